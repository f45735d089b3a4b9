package maylng

import (
	"errors"
	"testing"
	"time"

	"github.com/maylng/mayl-sdk/internal/api"
)

// All taxonomy members implement MaylError.
var (
	_ MaylError = (*AuthenticationError)(nil)
	_ MaylError = (*AuthorizationError)(nil)
	_ MaylError = (*NotFoundError)(nil)
	_ MaylError = (*ValidationError)(nil)
	_ MaylError = (*RateLimitError)(nil)
	_ MaylError = (*NetworkError)(nil)
	_ MaylError = (*ServerError)(nil)
	_ MaylError = (*TimeoutError)(nil)
	_ MaylError = (*EmailAddressError)(nil)
	_ MaylError = (*EmailSendError)(nil)
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrMissingAPIKey", ErrMissingAPIKey},
		{"ErrClientClosed", ErrClientClosed},
		{"ErrAuthentication", ErrAuthentication},
		{"ErrAuthorization", ErrAuthorization},
		{"ErrNotFound", ErrNotFound},
		{"ErrValidation", ErrValidation},
		{"ErrRateLimited", ErrRateLimited},
		{"ErrNetwork", ErrNetwork},
		{"ErrServer", ErrServer},
		{"ErrTimeout", ErrTimeout},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Error("sentinel error is nil")
			}
			if s.err.Error() == "" {
				t.Error("sentinel error has empty message")
			}
		})
	}
}

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		err        MaylError
		code       string
		httpStatus int
	}{
		{&AuthenticationError{}, "authentication_error", 401},
		{&AuthorizationError{}, "authorization_error", 403},
		{&NotFoundError{}, "not_found_error", 404},
		{&ValidationError{}, "validation_error", 400},
		{&RateLimitError{}, "rate_limit_error", 429},
		{&NetworkError{}, "network_error", 0},
		{&ServerError{StatusCode: 503}, "server_error", 503},
		{&TimeoutError{}, "timeout_error", 0},
		{&EmailAddressError{}, "email_address_error", 0},
		{&EmailSendError{}, "email_send_error", 0},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := tt.err.Code(); got != tt.code {
				t.Errorf("Code() = %q, want %q", got, tt.code)
			}
			if got := tt.err.HTTPStatus(); got != tt.httpStatus {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.httpStatus)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "authentication",
			err:      &AuthenticationError{Message: "invalid API key", RequestID: "req-1"},
			expected: "authentication failed: invalid API key (request_id: req-1)",
		},
		{
			name:     "not found with resource and id",
			err:      &NotFoundError{Resource: "email address", ID: "addr-1"},
			expected: "email address not found: addr-1",
		},
		{
			name:     "validation with field",
			err:      &ValidationError{Field: "to[2].email", Message: `invalid email address: "bad"`},
			expected: `validation failed: to[2].email: invalid email address: "bad"`,
		},
		{
			name:     "rate limit with retry hint",
			err:      &RateLimitError{RetryAfter: 42},
			expected: "rate limit exceeded (retry after 42s)",
		},
		{
			name:     "server error",
			err:      &ServerError{StatusCode: 502, Message: "bad gateway"},
			expected: "server error 502: bad gateway",
		},
		{
			name:     "timeout",
			err:      &TimeoutError{Timeout: 30 * time.Second},
			expected: "request timed out after 30s",
		},
		{
			name:     "email send",
			err:      &EmailSendError{Message: "sending quota exhausted"},
			expected: "email operation failed: sending quota exhausted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"authentication", &AuthenticationError{}, ErrAuthentication},
		{"authorization", &AuthorizationError{}, ErrAuthorization},
		{"not found", &NotFoundError{}, ErrNotFound},
		{"validation", &ValidationError{}, ErrValidation},
		{"rate limited", &RateLimitError{}, ErrRateLimited},
		{"network", &NetworkError{Err: errors.New("refused")}, ErrNetwork},
		{"server", &ServerError{StatusCode: 500}, ErrServer},
		{"timeout", &TimeoutError{}, ErrTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.target) {
				t.Errorf("errors.Is(%T, target) = false, want true", tt.err)
			}
			if errors.Is(tt.err, ErrMissingAPIKey) {
				t.Errorf("%T must not match unrelated sentinel", tt.err)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		name  string
		in    error
		check func(t *testing.T, out error)
	}{
		{
			name: "401 becomes AuthenticationError",
			in:   &api.APIError{StatusCode: 401, Message: "bad key", RequestID: "req-1"},
			check: func(t *testing.T, out error) {
				var e *AuthenticationError
				if !errors.As(out, &e) {
					t.Fatalf("got %T, want AuthenticationError", out)
				}
				if e.RequestID != "req-1" {
					t.Errorf("RequestID = %q, want req-1", e.RequestID)
				}
			},
		},
		{
			name: "403 becomes AuthorizationError",
			in:   &api.APIError{StatusCode: 403},
			check: func(t *testing.T, out error) {
				if !errors.Is(out, ErrAuthorization) {
					t.Errorf("got %v, want ErrAuthorization match", out)
				}
			},
		},
		{
			name: "404 carries resource and id",
			in:   &api.APIError{StatusCode: 404, Message: "no such address"},
			check: func(t *testing.T, out error) {
				var e *NotFoundError
				if !errors.As(out, &e) {
					t.Fatalf("got %T, want NotFoundError", out)
				}
				if e.Resource != "email address" || e.ID != "addr-1" {
					t.Errorf("Resource/ID = %q/%q, want email address/addr-1", e.Resource, e.ID)
				}
			},
		},
		{
			name: "400 carries field",
			in:   &api.APIError{StatusCode: 400, Field: "subject"},
			check: func(t *testing.T, out error) {
				var e *ValidationError
				if !errors.As(out, &e) {
					t.Fatalf("got %T, want ValidationError", out)
				}
				if e.Field != "subject" {
					t.Errorf("Field = %q, want subject", e.Field)
				}
			},
		},
		{
			name: "429 carries retry-after",
			in:   &api.APIError{StatusCode: 429, RetryAfter: 42},
			check: func(t *testing.T, out error) {
				var e *RateLimitError
				if !errors.As(out, &e) {
					t.Fatalf("got %T, want RateLimitError", out)
				}
				if e.RetryAfter != 42 {
					t.Errorf("RetryAfter = %d, want 42", e.RetryAfter)
				}
			},
		},
		{
			name: "5xx becomes ServerError with status",
			in:   &api.APIError{StatusCode: 503},
			check: func(t *testing.T, out error) {
				var e *ServerError
				if !errors.As(out, &e) {
					t.Fatalf("got %T, want ServerError", out)
				}
				if e.StatusCode != 503 {
					t.Errorf("StatusCode = %d, want 503", e.StatusCode)
				}
			},
		},
		{
			name: "unexpected status becomes generic ServerError",
			in:   &api.APIError{StatusCode: 418},
			check: func(t *testing.T, out error) {
				if !errors.Is(out, ErrServer) {
					t.Errorf("got %v, want ErrServer match", out)
				}
			},
		},
		{
			name: "transport timeout becomes TimeoutError",
			in:   &api.TimeoutError{URL: "https://api.maylng.com/v1/emails", Timeout: time.Second},
			check: func(t *testing.T, out error) {
				if !errors.Is(out, ErrTimeout) {
					t.Errorf("got %v, want ErrTimeout match", out)
				}
			},
		},
		{
			name: "transport failure becomes NetworkError",
			in:   &api.NetworkError{Err: errors.New("connection refused")},
			check: func(t *testing.T, out error) {
				if !errors.Is(out, ErrNetwork) {
					t.Errorf("got %v, want ErrNetwork match", out)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, wrapError(tt.in, "email address", "addr-1"))
		})
	}
}

func TestWrapError_Nil(t *testing.T) {
	if err := wrapError(nil, "email", ""); err != nil {
		t.Errorf("wrapError(nil) = %v, want nil", err)
	}
}
