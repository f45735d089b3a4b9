package maylng

import (
	"context"
	"strings"
	"sync"

	"github.com/maylng/mayl-sdk/internal/api"
)

// Client is the main Maylng client. It composes the transport with the
// EmailAddresses and Emails services.
type Client struct {
	apiClient *api.Client

	// EmailAddresses manages temporary and persistent email addresses.
	EmailAddresses *EmailAddressesService
	// Emails sends and tracks messages.
	Emails *EmailsService

	mu     sync.RWMutex
	closed bool
}

// New creates a new Maylng client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if strings.TrimSpace(cfg.baseURL) == "" {
		return nil, newValidationError("baseUrl", "base URL must be a non-empty string")
	}
	if cfg.timeout <= 0 {
		return nil, newValidationError("timeout", "timeout must be a positive duration")
	}

	var retry *api.RetryConfig
	if cfg.retries > 0 {
		retry = api.DefaultRetryConfig()
		retry.MaxRetries = cfg.retries
		if len(cfg.retryOn) > 0 {
			codes := make(map[int]struct{}, len(cfg.retryOn))
			for _, code := range cfg.retryOn {
				codes[code] = struct{}{}
			}
			retry.RetryableOn = func(statusCode int) bool {
				_, ok := codes[statusCode]
				return ok
			}
		}
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     apiKey,
		Timeout:    cfg.timeout,
		HTTPClient: cfg.httpClient,
		Logger:     cfg.logger,
		Retry:      retry,
	})
	if err != nil {
		return nil, err
	}

	c := &Client{apiClient: apiClient}
	c.EmailAddresses = &EmailAddressesService{client: c}
	c.Emails = &EmailsService{client: c}

	return c, nil
}

// checkClosed returns ErrClientClosed if the client has been closed.
func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// HealthCheck probes API liveness. It never returns an error: any
// failure is downgraded to an unhealthy status carrying the error message.
func (c *Client) HealthCheck(ctx context.Context) *HealthStatus {
	if err := c.checkClosed(); err != nil {
		return &HealthStatus{Status: HealthStatusUnhealthy, Message: err.Error()}
	}

	health, err := c.apiClient.GetHealth(ctx)
	if err != nil {
		err = wrapError(err, "health", "")
		return &HealthStatus{Status: HealthStatusUnhealthy, Message: err.Error()}
	}

	status := health.Status
	if status == "" {
		status = HealthStatusHealthy
	}
	return &HealthStatus{
		Status:    status,
		Message:   health.Message,
		Timestamp: health.Timestamp,
	}
}

// GetAccountInfo retrieves account usage and plan limits.
func (c *Client) GetAccountInfo(ctx context.Context) (*AccountInfo, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	info, err := c.apiClient.GetAccountInfo(ctx)
	if err != nil {
		return nil, wrapError(err, "account", "")
	}

	return &AccountInfo{
		AccountID:           info.AccountID,
		Plan:                info.Plan,
		EmailAddressLimit:   info.EmailAddressLimit,
		EmailAddressUsed:    info.EmailAddressUsed,
		EmailLimitPerMonth:  info.EmailLimitPerMonth,
		EmailsSentThisMonth: info.EmailsSentThisMonth,
		CreatedAt:           info.CreatedAt,
	}, nil
}

// UpdateAPIKey replaces the API key used for subsequent requests.
// In-flight requests may observe either the old or the new key.
func (c *Client) UpdateAPIKey(apiKey string) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	if strings.TrimSpace(apiKey) == "" {
		return newValidationError("apiKey", "API key must be a non-empty string")
	}
	c.apiClient.SetAPIKey(apiKey)
	return nil
}

// UpdateBaseURL replaces the base URL used for subsequent requests.
// In-flight requests may observe either the old or the new URL.
func (c *Client) UpdateBaseURL(baseURL string) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	if strings.TrimSpace(baseURL) == "" {
		return newValidationError("baseUrl", "base URL must be a non-empty string")
	}
	c.apiClient.SetBaseURL(baseURL)
	return nil
}

// Close releases resources held by the client. Subsequent operations
// return ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.apiClient.CloseIdleConnections()
	return nil
}
