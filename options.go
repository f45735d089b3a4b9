package maylng

import (
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.maylng.com"
	defaultTimeout = 30 * time.Second
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
	retries    int
	retryOn    []int
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger used for transport debug logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithRetries enables automatic retries for failed API calls.
// The SDK performs no retries unless this option is given.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry when
// retries are enabled. Default: [408, 429, 500, 502, 503, 504]
func WithRetryOn(statusCodes []int) Option {
	return func(c *clientConfig) {
		c.retryOn = statusCodes
	}
}
