package maylng

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// newTestClient builds a client pointed at an httptest server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New("test-key", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

// newFailClient builds a client whose server fails the test when hit.
// Used to prove validation happens before any network call.
func newFailClient(t *testing.T) *Client {
	t.Helper()
	return newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected network call: %s %s", r.Method, r.URL.Path)
	})
}

func writeData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"data":    data,
		"success": true,
	})
}

func TestNew_RequiresAPIKey(t *testing.T) {
	for _, key := range []string{"", "   "} {
		if _, err := New(key); !errors.Is(err, ErrMissingAPIKey) {
			t.Errorf("New(%q) error = %v, want ErrMissingAPIKey", key, err)
		}
	}
}

func TestNew_InvalidTimeout(t *testing.T) {
	_, err := New("test-key", WithTimeout(-time.Second))
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("New() error = %v, want ValidationError", err)
	}
	if valErr.Field != "timeout" {
		t.Errorf("Field = %q, want timeout", valErr.Field)
	}
}

func TestNew_EmptyBaseURL(t *testing.T) {
	_, err := New("test-key", WithBaseURL("  "))
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("New() error = %v, want ValidationError", err)
	}
	if valErr.Field != "baseUrl" {
		t.Errorf("Field = %q, want baseUrl", valErr.Field)
	}
}

func TestHealthCheck_Healthy(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/health" {
			t.Errorf("path = %s, want /v1/health", r.URL.Path)
		}
		writeData(w, map[string]string{"status": "healthy", "message": "all systems go"})
	})

	health := client.HealthCheck(context.Background())
	if health.Status != HealthStatusHealthy {
		t.Errorf("Status = %q, want healthy", health.Status)
	}
	if health.Message != "all systems go" {
		t.Errorf("Message = %q", health.Message)
	}
}

func TestHealthCheck_NeverReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close() // make the endpoint unreachable

	client, err := New("test-key", WithBaseURL(serverURL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	health := client.HealthCheck(context.Background())
	if health.Status != HealthStatusUnhealthy {
		t.Errorf("Status = %q, want unhealthy", health.Status)
	}
	if health.Message == "" {
		t.Error("unhealthy result should carry the error message")
	}
}

func TestHealthCheck_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "database unavailable"}`))
	})

	health := client.HealthCheck(context.Background())
	if health.Status != HealthStatusUnhealthy {
		t.Errorf("Status = %q, want unhealthy", health.Status)
	}
}

func TestGetAccountInfo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/account" {
			t.Errorf("path = %s, want /v1/account", r.URL.Path)
		}
		writeData(w, map[string]any{
			"accountId":           "acct-1",
			"plan":                "pro",
			"emailAddressLimit":   100,
			"emailAddressUsed":    7,
			"emailLimitPerMonth":  5000,
			"emailsSentThisMonth": 123,
			"createdAt":           "2024-06-01T12:00:00Z",
		})
	})

	info, err := client.GetAccountInfo(context.Background())
	if err != nil {
		t.Fatalf("GetAccountInfo() error = %v", err)
	}
	if info.AccountID != "acct-1" {
		t.Errorf("AccountID = %q, want acct-1", info.AccountID)
	}
	if info.Plan != "pro" {
		t.Errorf("Plan = %q, want pro", info.Plan)
	}
	if info.EmailAddressUsed != 7 || info.EmailAddressLimit != 100 {
		t.Errorf("address usage = %d/%d, want 7/100", info.EmailAddressUsed, info.EmailAddressLimit)
	}
	want := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	if !info.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", info.CreatedAt, want)
	}
}

func TestUpdateAPIKey(t *testing.T) {
	var lastAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		lastAuth = r.Header.Get("Authorization")
		writeData(w, map[string]string{"status": "healthy"})
	})

	if err := client.UpdateAPIKey("rotated-key"); err != nil {
		t.Fatalf("UpdateAPIKey() error = %v", err)
	}
	client.HealthCheck(context.Background())
	if lastAuth != "Bearer rotated-key" {
		t.Errorf("Authorization = %q, want Bearer rotated-key", lastAuth)
	}
}

func TestUpdateAPIKey_RejectsEmpty(t *testing.T) {
	client := newFailClient(t)

	err := client.UpdateAPIKey("  ")
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("UpdateAPIKey() error = %v, want ValidationError", err)
	}
	if valErr.Field != "apiKey" {
		t.Errorf("Field = %q, want apiKey", valErr.Field)
	}
}

func TestUpdateBaseURL_RejectsEmpty(t *testing.T) {
	client := newFailClient(t)

	err := client.UpdateBaseURL("")
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("UpdateBaseURL() error = %v, want ValidationError", err)
	}
	if valErr.Field != "baseUrl" {
		t.Errorf("Field = %q, want baseUrl", valErr.Field)
	}
}

func TestClose(t *testing.T) {
	client := newFailClient(t)

	if err := client.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	// Closing twice is a no-op.
	if err := client.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}

	ctx := context.Background()
	if _, err := client.EmailAddresses.Get(ctx, "addr-1"); !errors.Is(err, ErrClientClosed) {
		t.Errorf("Get() after Close error = %v, want ErrClientClosed", err)
	}
	if _, err := client.Emails.Get(ctx, "email-1"); !errors.Is(err, ErrClientClosed) {
		t.Errorf("Emails.Get() after Close error = %v, want ErrClientClosed", err)
	}
	if err := client.UpdateAPIKey("new-key"); !errors.Is(err, ErrClientClosed) {
		t.Errorf("UpdateAPIKey() after Close error = %v, want ErrClientClosed", err)
	}

	health := client.HealthCheck(ctx)
	if health.Status != HealthStatusUnhealthy {
		t.Errorf("HealthCheck() after Close status = %q, want unhealthy", health.Status)
	}
}

func TestRequestTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writeData(w, nil)
	}))
	t.Cleanup(server.Close)

	client, err := New("test-key",
		WithBaseURL(server.URL),
		WithTimeout(20*time.Millisecond),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = client.Emails.Get(context.Background(), "email-1")
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("error = %v, want ErrTimeout", err)
	}
	if errors.Is(err, ErrNetwork) {
		t.Error("timeout must not match ErrNetwork")
	}
}
