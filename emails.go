package maylng

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/maylng/mayl-sdk/internal/api"
)

// EmailsService sends and tracks emails. Access it through Client.Emails.
type EmailsService struct {
	client *Client
}

// SendEmailParams are the parameters for sending an email.
type SendEmailParams struct {
	// FromEmailID is the id of the sending email address. Required.
	FromEmailID string
	// To lists the primary recipients. At least one is required.
	To []Recipient
	// CC and BCC list additional recipients.
	CC  []Recipient
	BCC []Recipient
	// Subject is the message subject. Required, must not be blank.
	Subject string
	// Text and HTML are the message bodies. At least one is required.
	Text string
	HTML string
	// Attachments are embedded into the message as base64 content.
	Attachments []Attachment
	// Headers are extra message headers passed through to the server.
	Headers map[string]string
	// ScheduledAt defers dispatch to a future time when set.
	ScheduledAt *time.Time
	// ThreadID groups related messages; opaque to the client.
	ThreadID string
	// Metadata is an opaque map stored with the message.
	Metadata map[string]any
}

// Send validates and submits an email for delivery. Validation failures
// surface as a *ValidationError before any network call.
func (s *EmailsService) Send(ctx context.Context, params SendEmailParams) (*SentEmail, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	if err := validateSendParams(&params); err != nil {
		return nil, err
	}

	resp, err := s.client.apiClient.SendEmail(ctx, &api.SendEmailRequest{
		FromEmailID: params.FromEmailID,
		To:          recipientsToAPI(params.To),
		CC:          recipientsToAPI(params.CC),
		BCC:         recipientsToAPI(params.BCC),
		Subject:     params.Subject,
		Text:        params.Text,
		HTML:        params.HTML,
		Attachments: attachmentsToAPI(params.Attachments),
		Headers:     params.Headers,
		ScheduledAt: params.ScheduledAt,
		ThreadID:    params.ThreadID,
		Metadata:    params.Metadata,
	})
	if err != nil {
		return nil, wrapSendError(err, "")
	}

	return sentEmailFromAPI(resp), nil
}

// Get retrieves a sent email by ID.
func (s *EmailsService) Get(ctx context.Context, id string) (*SentEmail, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, newValidationError("id", "id must be a non-empty string")
	}

	resp, err := s.client.apiClient.GetEmail(ctx, id)
	if err != nil {
		return nil, wrapSendError(err, id)
	}

	return sentEmailFromAPI(resp), nil
}

// ListEmailsParams filter and paginate a List call.
// Zero-valued filters are omitted from the request.
type ListEmailsParams struct {
	FromEmailID string
	Status      EmailStatus
	ThreadID    string
	Since       *time.Time
	Until       *time.Time
	Page        int
	Limit       int
}

// List retrieves a page of sent emails.
func (s *EmailsService) List(ctx context.Context, params ListEmailsParams) (*Page[*SentEmail], error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	query := url.Values{}
	if params.FromEmailID != "" {
		query.Set("fromEmailId", params.FromEmailID)
	}
	if params.Status != "" {
		query.Set("status", string(params.Status))
	}
	if params.ThreadID != "" {
		query.Set("threadId", params.ThreadID)
	}
	if params.Since != nil {
		query.Set("since", params.Since.UTC().Format(time.RFC3339))
	}
	if params.Until != nil {
		query.Set("until", params.Until.UTC().Format(time.RFC3339))
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	resp, err := s.client.apiClient.ListEmails(ctx, query)
	if err != nil {
		return nil, wrapSendError(err, "")
	}

	return pageFromAPI(resp, sentEmailFromAPI), nil
}

// Cancel cancels a scheduled or queued email. The server is
// authoritative: cancelling an already-dispatched email fails with a
// validation or not-found error from the API.
func (s *EmailsService) Cancel(ctx context.Context, id string) (*SentEmail, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, newValidationError("id", "id must be a non-empty string")
	}

	resp, err := s.client.apiClient.CancelEmail(ctx, id)
	if err != nil {
		return nil, wrapSendError(err, id)
	}

	return sentEmailFromAPI(resp), nil
}

// Resend creates a new delivery attempt for a previously sent email.
func (s *EmailsService) Resend(ctx context.Context, id string) (*SentEmail, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, newValidationError("id", "id must be a non-empty string")
	}

	resp, err := s.client.apiClient.ResendEmail(ctx, id)
	if err != nil {
		return nil, wrapSendError(err, id)
	}

	return sentEmailFromAPI(resp), nil
}

// GetDeliveryStatus retrieves the delivery status of a sent email.
func (s *EmailsService) GetDeliveryStatus(ctx context.Context, id string) (*DeliveryStatus, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, newValidationError("id", "id must be a non-empty string")
	}

	resp, err := s.client.apiClient.GetDeliveryStatus(ctx, id)
	if err != nil {
		return nil, wrapSendError(err, id)
	}

	return deliveryStatusFromAPI(resp), nil
}

// wrapSendError converts transport errors from email operations. A bare
// failed envelope becomes an *EmailSendError; everything else goes
// through the shared taxonomy mapping.
func wrapSendError(err error, id string) error {
	if err == nil {
		return nil
	}
	var envErr *api.EnvelopeError
	if errors.As(err, &envErr) {
		msg := envErr.Message
		if msg == "" {
			msg = "email operation failed"
		}
		return &EmailSendError{Message: msg, RequestID: envErr.RequestID}
	}
	return wrapError(err, "email", id)
}
