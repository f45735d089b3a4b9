package api

import (
	"fmt"
	"time"
)

// APIError represents an HTTP error response from the Maylng API.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
	// Field is the offending field name for 400 responses, when the
	// server provides one.
	Field string
	// RetryAfter is the number of seconds from the Retry-After header
	// on 429 responses. Zero when the header is absent.
	RetryAfter int
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("API error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// EnvelopeError represents a 2xx response whose envelope carried
// success=false. The services wrap it into a domain error.
type EnvelopeError struct {
	Message   string
	RequestID string
}

func (e *EnvelopeError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed: %s", e.Message)
	}
	return "request failed"
}

// NetworkError represents a transport-level failure with no HTTP response.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// TimeoutError represents a request that exceeded its deadline.
type TimeoutError struct {
	URL     string
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	if e.Timeout > 0 {
		return fmt.Sprintf("request to %s timed out after %v", e.URL, e.Timeout)
	}
	return fmt.Sprintf("request to %s timed out", e.URL)
}

// Unwrap returns the underlying error.
func (e *TimeoutError) Unwrap() error {
	return e.Err
}
