package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateEmailAddress creates a new email address.
func (c *Client) CreateEmailAddress(ctx context.Context, req *CreateEmailAddressRequest) (*EmailAddress, error) {
	var result EmailAddress
	if err := c.Do(ctx, http.MethodPost, "/v1/email-addresses", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetEmailAddress retrieves an email address by ID.
func (c *Client) GetEmailAddress(ctx context.Context, id string) (*EmailAddress, error) {
	path := fmt.Sprintf("/v1/email-addresses/%s", url.PathEscape(id))
	var result EmailAddress
	if err := c.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListEmailAddresses lists email addresses matching the query filters.
func (c *Client) ListEmailAddresses(ctx context.Context, query url.Values) (*Page[EmailAddress], error) {
	var result Page[EmailAddress]
	if err := c.Do(ctx, http.MethodGet, "/v1/email-addresses", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateEmailAddress updates the status or metadata of an email address.
func (c *Client) UpdateEmailAddress(ctx context.Context, id string, req *UpdateEmailAddressRequest) (*EmailAddress, error) {
	path := fmt.Sprintf("/v1/email-addresses/%s", url.PathEscape(id))
	var result EmailAddress
	if err := c.Do(ctx, http.MethodPatch, path, nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteEmailAddress deletes an email address.
func (c *Client) DeleteEmailAddress(ctx context.Context, id string) error {
	path := fmt.Sprintf("/v1/email-addresses/%s", url.PathEscape(id))
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// ExtendEmailAddress extends the expiration of a temporary email address.
func (c *Client) ExtendEmailAddress(ctx context.Context, id string, req *ExtendEmailAddressRequest) (*EmailAddress, error) {
	path := fmt.Sprintf("/v1/email-addresses/%s/extend", url.PathEscape(id))
	var result EmailAddress
	if err := c.Do(ctx, http.MethodPost, path, nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SendEmail submits an email for delivery.
func (c *Client) SendEmail(ctx context.Context, req *SendEmailRequest) (*SentEmail, error) {
	var result SentEmail
	if err := c.Do(ctx, http.MethodPost, "/v1/emails/send", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetEmail retrieves a sent email by ID.
func (c *Client) GetEmail(ctx context.Context, id string) (*SentEmail, error) {
	path := fmt.Sprintf("/v1/emails/%s", url.PathEscape(id))
	var result SentEmail
	if err := c.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListEmails lists sent emails matching the query filters.
func (c *Client) ListEmails(ctx context.Context, query url.Values) (*Page[SentEmail], error) {
	var result Page[SentEmail]
	if err := c.Do(ctx, http.MethodGet, "/v1/emails", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CancelEmail cancels a scheduled or queued email.
func (c *Client) CancelEmail(ctx context.Context, id string) (*SentEmail, error) {
	path := fmt.Sprintf("/v1/emails/%s/cancel", url.PathEscape(id))
	var result SentEmail
	if err := c.Do(ctx, http.MethodPost, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ResendEmail creates a new delivery attempt for a sent email.
func (c *Client) ResendEmail(ctx context.Context, id string) (*SentEmail, error) {
	path := fmt.Sprintf("/v1/emails/%s/resend", url.PathEscape(id))
	var result SentEmail
	if err := c.Do(ctx, http.MethodPost, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetDeliveryStatus retrieves the delivery status of a sent email.
func (c *Client) GetDeliveryStatus(ctx context.Context, id string) (*DeliveryStatus, error) {
	path := fmt.Sprintf("/v1/emails/%s/status", url.PathEscape(id))
	var result DeliveryStatus
	if err := c.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAccountInfo retrieves account usage and limits.
func (c *Client) GetAccountInfo(ctx context.Context) (*AccountInfo, error) {
	var result AccountInfo
	if err := c.Do(ctx, http.MethodGet, "/v1/account", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetHealth probes API liveness.
func (c *Client) GetHealth(ctx context.Context) (*HealthStatus, error) {
	var result HealthStatus
	if err := c.Do(ctx, http.MethodGet, "/v1/health", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
