package api

import "time"

// EmailAddress represents an email address resource on the wire.
type EmailAddress struct {
	ID        string         `json:"id"`
	Email     string         `json:"email"`
	Type      string         `json:"type"`
	Status    string         `json:"status"`
	ExpiresAt *time.Time     `json:"expiresAt,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// CreateEmailAddressRequest is the POST /v1/email-addresses body.
type CreateEmailAddressRequest struct {
	Type              string         `json:"type"`
	Prefix            string         `json:"prefix,omitempty"`
	Domain            string         `json:"domain,omitempty"`
	ExpirationMinutes int            `json:"expirationMinutes,omitempty"`
	Metadata          map[string]any `json:"metadata,omitempty"`
}

// UpdateEmailAddressRequest is the PATCH /v1/email-addresses/{id} body.
type UpdateEmailAddressRequest struct {
	Status   string         `json:"status,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ExtendEmailAddressRequest is the POST /v1/email-addresses/{id}/extend body.
type ExtendEmailAddressRequest struct {
	AdditionalMinutes int `json:"additionalMinutes"`
}

// Recipient represents one address on a message.
type Recipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Attachment carries base64-encoded binary content on the wire.
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
	ContentID   string `json:"contentId,omitempty"`
}

// SendEmailRequest is the POST /v1/emails/send body.
type SendEmailRequest struct {
	FromEmailID string            `json:"fromEmailId"`
	To          []Recipient       `json:"to"`
	CC          []Recipient       `json:"cc,omitempty"`
	BCC         []Recipient       `json:"bcc,omitempty"`
	Subject     string            `json:"subject"`
	Text        string            `json:"text,omitempty"`
	HTML        string            `json:"html,omitempty"`
	Attachments []Attachment      `json:"attachments,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	ScheduledAt *time.Time        `json:"scheduledAt,omitempty"`
	ThreadID    string            `json:"threadId,omitempty"`
	Metadata    map[string]any    `json:"metadata,omitempty"`
}

// SentEmail represents a submitted email resource on the wire.
type SentEmail struct {
	ID          string            `json:"id"`
	FromEmailID string            `json:"fromEmailId"`
	To          []Recipient       `json:"to"`
	CC          []Recipient       `json:"cc,omitempty"`
	BCC         []Recipient       `json:"bcc,omitempty"`
	Subject     string            `json:"subject"`
	Text        string            `json:"text,omitempty"`
	HTML        string            `json:"html,omitempty"`
	Attachments []Attachment      `json:"attachments,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	Status      string            `json:"status"`
	ThreadID    string            `json:"threadId,omitempty"`
	ScheduledAt *time.Time        `json:"scheduledAt,omitempty"`
	SentAt      *time.Time        `json:"sentAt,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	Metadata    map[string]any    `json:"metadata,omitempty"`
}

// DeliveryStatus represents the GET /v1/emails/{id}/status response.
type DeliveryStatus struct {
	Status        string     `json:"status"`
	DeliveredAt   *time.Time `json:"deliveredAt,omitempty"`
	FailureReason string     `json:"failureReason,omitempty"`
	BounceType    string     `json:"bounceType,omitempty"`
	Opens         int        `json:"opens,omitempty"`
	Clicks        int        `json:"clicks,omitempty"`
	LastOpenedAt  *time.Time `json:"lastOpenedAt,omitempty"`
	LastClickedAt *time.Time `json:"lastClickedAt,omitempty"`
}

// Page is the uniform list response shape.
type Page[T any] struct {
	Items       []T  `json:"items"`
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// AccountInfo represents the GET /v1/account response.
type AccountInfo struct {
	AccountID           string    `json:"accountId"`
	Plan                string    `json:"plan"`
	EmailAddressLimit   int       `json:"emailAddressLimit"`
	EmailAddressUsed    int       `json:"emailAddressUsed"`
	EmailLimitPerMonth  int       `json:"emailLimitPerMonth"`
	EmailsSentThisMonth int       `json:"emailsSentThisMonth"`
	CreatedAt           time.Time `json:"createdAt"`
}

// HealthStatus represents the GET /v1/health response.
type HealthStatus struct {
	Status    string     `json:"status"`
	Message   string     `json:"message,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}
