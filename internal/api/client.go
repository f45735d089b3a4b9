// Package api implements the HTTP transport for the Maylng API.
//
// It attaches authentication and correlation headers, decodes the
// uniform response envelope and classifies failures into typed errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.maylng.com"
	DefaultTimeout = 30 * time.Second
)

// Config configures the API client.
type Config struct {
	// BaseURL is the API base URL. Defaults to DefaultBaseURL.
	BaseURL string
	// APIKey is the bearer token attached to every request. Required.
	APIKey string
	// Timeout bounds each individual request. Defaults to DefaultTimeout.
	Timeout time.Duration
	// HTTPClient overrides the underlying HTTP client.
	HTTPClient *http.Client
	// Logger receives debug logs. Defaults to slog.Default().
	Logger *slog.Logger
	// Retry enables automatic retries when non-nil. Nil means a failed
	// request surfaces immediately.
	Retry *RetryConfig
}

// Client is the HTTP API client.
//
// The API key and base URL may be updated in place; updates are not
// guaranteed to be observed by in-flight requests.
type Client struct {
	mu         sync.RWMutex
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
	retry      *RetryConfig
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		timeout:    cfg.Timeout,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
		retry:      cfg.Retry,
	}, nil
}

// BaseURL returns the current base URL.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetAPIKey replaces the API key used for subsequent requests.
func (c *Client) SetAPIKey(apiKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = apiKey
}

// SetBaseURL replaces the base URL used for subsequent requests.
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// CloseIdleConnections releases idle connections held by the transport.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// envelope is the uniform response wrapper returned by every endpoint.
type envelope struct {
	Data      json.RawMessage `json:"data"`
	Success   bool            `json:"success"`
	Error     string          `json:"error,omitempty"`
	RequestID string          `json:"requestId,omitempty"`
}

// Do performs a single API call. The response envelope is decoded and
// its data field unmarshalled into result when result is non-nil.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	if c.retry == nil {
		return c.doOnce(ctx, method, path, query, payload, result)
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		lastErr = c.doOnce(ctx, method, path, query, payload, result)
		if lastErr == nil {
			return nil
		}
		var apiErr *APIError
		if !errors.As(lastErr, &apiErr) || !c.retry.ShouldRetry(attempt, apiErr.StatusCode) {
			return lastErr
		}
		c.logger.Debug("retrying request",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("attempt", attempt+1),
			slog.Int("status", apiErr.StatusCode),
		)
		if err := c.retry.Wait(ctx, attempt); err != nil {
			return lastErr
		}
	}
}

func (c *Client) doOnce(ctx context.Context, method, path string, query url.Values, payload []byte, result any) error {
	c.mu.RLock()
	baseURL := c.baseURL
	apiKey := c.apiKey
	timeout := c.timeout
	c.mu.RUnlock()

	fullURL := baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	c.logger.Debug("sending request",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", requestID),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return &TimeoutError{URL: fullURL, Timeout: timeout, Err: err}
		}
		return &NetworkError{Err: err, URL: fullURL}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err, URL: fullURL}
	}

	c.logger.Debug("received response",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.String("request_id", requestID),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(resp, respBody)
	}

	if len(respBody) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if !env.Success {
		return &EnvelopeError{Message: env.Error, RequestID: env.RequestID}
	}

	if result != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, result); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}

	return nil
}

// isTimeout reports whether a transport error is a deadline expiry
// rather than a generic connection failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// parseErrorResponse converts a non-2xx response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var errResp struct {
		Error     string `json:"error"`
		Message   string `json:"message"`
		Field     string `json:"field"`
		RequestID string `json:"requestId"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		apiErr.Message = errResp.Error
		if apiErr.Message == "" {
			apiErr.Message = errResp.Message
		}
		apiErr.Field = errResp.Field
		apiErr.RequestID = errResp.RequestID
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		if seconds, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && seconds > 0 {
			apiErr.RetryAfter = seconds
		}
	}

	return apiErr
}
