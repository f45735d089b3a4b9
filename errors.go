package maylng

import (
	"errors"
	"fmt"
	"time"

	"github.com/maylng/mayl-sdk/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("client has been closed")

	// ErrAuthentication is returned when the API key is invalid or expired.
	ErrAuthentication = errors.New("authentication failed")

	// ErrAuthorization is returned when the API key lacks permission.
	ErrAuthorization = errors.New("permission denied")

	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation is returned when a request fails validation.
	ErrValidation = errors.New("validation failed")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrNetwork is returned when a request fails at the transport level.
	ErrNetwork = errors.New("network error")

	// ErrServer is returned when the API responds with a server error.
	ErrServer = errors.New("server error")

	// ErrTimeout is returned when a request exceeds its deadline.
	ErrTimeout = errors.New("request timed out")
)

// MaylError is implemented by all SDK errors.
type MaylError interface {
	error
	// Code returns the stable string code for the error kind.
	Code() string
	// HTTPStatus returns the HTTP-equivalent status, or 0 for
	// transport-only failures.
	HTTPStatus() int
	MaylError() // marker method
}

// AuthenticationError indicates an invalid or expired API key.
type AuthenticationError struct {
	Message   string
	RequestID string
}

func (e *AuthenticationError) Error() string {
	return formatError("authentication failed", e.Message, e.RequestID)
}

// Code returns the stable error code.
func (e *AuthenticationError) Code() string { return "authentication_error" }

// HTTPStatus returns the HTTP-equivalent status.
func (e *AuthenticationError) HTTPStatus() int { return 401 }

// MaylError implements the MaylError interface.
func (e *AuthenticationError) MaylError() {}

// Is implements errors.Is for sentinel error matching.
func (e *AuthenticationError) Is(target error) bool { return target == ErrAuthentication }

// AuthorizationError indicates the API key lacks permission for the operation.
type AuthorizationError struct {
	Message   string
	RequestID string
}

func (e *AuthorizationError) Error() string {
	return formatError("permission denied", e.Message, e.RequestID)
}

// Code returns the stable error code.
func (e *AuthorizationError) Code() string { return "authorization_error" }

// HTTPStatus returns the HTTP-equivalent status.
func (e *AuthorizationError) HTTPStatus() int { return 403 }

// MaylError implements the MaylError interface.
func (e *AuthorizationError) MaylError() {}

// Is implements errors.Is for sentinel error matching.
func (e *AuthorizationError) Is(target error) bool { return target == ErrAuthorization }

// NotFoundError indicates a requested resource does not exist.
type NotFoundError struct {
	Resource  string
	ID        string
	Message   string
	RequestID string
}

func (e *NotFoundError) Error() string {
	prefix := "not found"
	if e.Resource != "" {
		prefix = e.Resource + " not found"
	}
	if e.ID != "" {
		prefix = fmt.Sprintf("%s: %s", prefix, e.ID)
	}
	return formatError(prefix, e.Message, e.RequestID)
}

// Code returns the stable error code.
func (e *NotFoundError) Code() string { return "not_found_error" }

// HTTPStatus returns the HTTP-equivalent status.
func (e *NotFoundError) HTTPStatus() int { return 404 }

// MaylError implements the MaylError interface.
func (e *NotFoundError) MaylError() {}

// Is implements errors.Is for sentinel error matching.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError indicates a request failed validation, either locally
// before any network call or server-side with a 400 response.
type ValidationError struct {
	// Field names the offending field where practical, e.g. "to[2].email".
	Field     string
	Message   string
	RequestID string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return formatError("validation failed: "+e.Field, e.Message, e.RequestID)
	}
	return formatError("validation failed", e.Message, e.RequestID)
}

// Code returns the stable error code.
func (e *ValidationError) Code() string { return "validation_error" }

// HTTPStatus returns the HTTP-equivalent status.
func (e *ValidationError) HTTPStatus() int { return 400 }

// MaylError implements the MaylError interface.
func (e *ValidationError) MaylError() {}

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// RateLimitError indicates the API rate limit has been exceeded.
type RateLimitError struct {
	// RetryAfter is the suggested wait in seconds from the Retry-After
	// header, or 0 when the server did not provide one.
	RetryAfter int
	Message    string
	RequestID  string
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return formatError(fmt.Sprintf("rate limit exceeded (retry after %ds)", e.RetryAfter), e.Message, e.RequestID)
	}
	return formatError("rate limit exceeded", e.Message, e.RequestID)
}

// Code returns the stable error code.
func (e *RateLimitError) Code() string { return "rate_limit_error" }

// HTTPStatus returns the HTTP-equivalent status.
func (e *RateLimitError) HTTPStatus() int { return 429 }

// MaylError implements the MaylError interface.
func (e *RateLimitError) MaylError() {}

// Is implements errors.Is for sentinel error matching.
func (e *RateLimitError) Is(target error) bool { return target == ErrRateLimited }

// NetworkError represents a transport-level failure with no HTTP response.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error { return e.Err }

// Code returns the stable error code.
func (e *NetworkError) Code() string { return "network_error" }

// HTTPStatus returns 0: network failures have no HTTP status.
func (e *NetworkError) HTTPStatus() int { return 0 }

// MaylError implements the MaylError interface.
func (e *NetworkError) MaylError() {}

// Is implements errors.Is for sentinel error matching.
func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// ServerError indicates a 5xx (or otherwise unclassified) API response.
type ServerError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *ServerError) Error() string {
	return formatError(fmt.Sprintf("server error %d", e.StatusCode), e.Message, e.RequestID)
}

// Code returns the stable error code.
func (e *ServerError) Code() string { return "server_error" }

// HTTPStatus returns the numeric status carried by the response.
func (e *ServerError) HTTPStatus() int { return e.StatusCode }

// MaylError implements the MaylError interface.
func (e *ServerError) MaylError() {}

// Is implements errors.Is for sentinel error matching.
func (e *ServerError) Is(target error) bool { return target == ErrServer }

// TimeoutError represents a request that exceeded the configured timeout.
type TimeoutError struct {
	URL     string
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	if e.Timeout > 0 {
		return fmt.Sprintf("request timed out after %v", e.Timeout)
	}
	return "request timed out"
}

// Unwrap returns the underlying error.
func (e *TimeoutError) Unwrap() error { return e.Err }

// Code returns the stable error code.
func (e *TimeoutError) Code() string { return "timeout_error" }

// HTTPStatus returns 0: timeouts have no HTTP status.
func (e *TimeoutError) HTTPStatus() int { return 0 }

// MaylError implements the MaylError interface.
func (e *TimeoutError) MaylError() {}

// Is implements errors.Is for sentinel error matching.
func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }

// EmailAddressError wraps a failed envelope from an email address
// operation that the transport layer did not classify more specifically.
type EmailAddressError struct {
	Message   string
	RequestID string
}

func (e *EmailAddressError) Error() string {
	return formatError("email address operation failed", e.Message, e.RequestID)
}

// Code returns the stable error code.
func (e *EmailAddressError) Code() string { return "email_address_error" }

// HTTPStatus returns 0: the HTTP exchange itself succeeded.
func (e *EmailAddressError) HTTPStatus() int { return 0 }

// MaylError implements the MaylError interface.
func (e *EmailAddressError) MaylError() {}

// EmailSendError wraps a failed envelope from an email operation that
// the transport layer did not classify more specifically.
type EmailSendError struct {
	Message   string
	RequestID string
}

func (e *EmailSendError) Error() string {
	return formatError("email operation failed", e.Message, e.RequestID)
}

// Code returns the stable error code.
func (e *EmailSendError) Code() string { return "email_send_error" }

// HTTPStatus returns 0: the HTTP exchange itself succeeded.
func (e *EmailSendError) HTTPStatus() int { return 0 }

// MaylError implements the MaylError interface.
func (e *EmailSendError) MaylError() {}

func formatError(prefix, message, requestID string) string {
	s := prefix
	if message != "" && message != prefix {
		s = fmt.Sprintf("%s: %s", prefix, message)
	}
	if requestID != "" {
		s = fmt.Sprintf("%s (request_id: %s)", s, requestID)
	}
	return s
}

// newValidationError builds a local pre-network validation failure.
func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// wrapError converts internal transport errors to public errors.
// Resource and id annotate 404 responses with what was being looked up.
func wrapError(err error, resource, id string) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 401:
			return &AuthenticationError{Message: apiErr.Message, RequestID: apiErr.RequestID}
		case 403:
			return &AuthorizationError{Message: apiErr.Message, RequestID: apiErr.RequestID}
		case 404:
			return &NotFoundError{Resource: resource, ID: id, Message: apiErr.Message, RequestID: apiErr.RequestID}
		case 400:
			return &ValidationError{Field: apiErr.Field, Message: apiErr.Message, RequestID: apiErr.RequestID}
		case 429:
			return &RateLimitError{RetryAfter: apiErr.RetryAfter, Message: apiErr.Message, RequestID: apiErr.RequestID}
		default:
			return &ServerError{StatusCode: apiErr.StatusCode, Message: apiErr.Message, RequestID: apiErr.RequestID}
		}
	}

	var timeoutErr *api.TimeoutError
	if errors.As(err, &timeoutErr) {
		return &TimeoutError{URL: timeoutErr.URL, Timeout: timeoutErr.Timeout, Err: timeoutErr.Err}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{Err: netErr.Err, URL: netErr.URL}
	}

	return err
}
