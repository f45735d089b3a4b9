package maylng

import (
	"encoding/base64"
	"time"

	"github.com/maylng/mayl-sdk/internal/api"
)

// EmailStatus is the lifecycle status of a sent email.
type EmailStatus string

const (
	// EmailStatusQueued means the email is awaiting dispatch.
	EmailStatusQueued EmailStatus = "queued"
	// EmailStatusSent means the email left the sending infrastructure.
	EmailStatusSent EmailStatus = "sent"
	// EmailStatusDelivered means the recipient server accepted the email.
	EmailStatusDelivered EmailStatus = "delivered"
	// EmailStatusFailed means delivery failed.
	EmailStatusFailed EmailStatus = "failed"
	// EmailStatusScheduled means the email is waiting for its scheduled time.
	EmailStatusScheduled EmailStatus = "scheduled"
)

// Recipient is one address on a message.
type Recipient struct {
	Email string
	Name  string
}

// Attachment is binary content embedded in a message. Content may be
// supplied as raw bytes or as pre-encoded base64 text; either way it is
// serialized to base64 before transmission.
type Attachment struct {
	Filename    string
	ContentType string
	// Content is the raw attachment bytes.
	Content []byte
	// ContentB64 is base64-encoded content, used when Content is empty.
	ContentB64 string
	// ContentID references the attachment inline from HTML bodies.
	ContentID string
}

// encoded returns the transport-safe base64 form of the content.
func (a *Attachment) encoded() string {
	if len(a.Content) > 0 {
		return base64.StdEncoding.EncodeToString(a.Content)
	}
	return a.ContentB64
}

// SentEmail represents a message submitted for delivery.
type SentEmail struct {
	ID          string
	FromEmailID string
	To          []Recipient
	CC          []Recipient
	BCC         []Recipient
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
	Headers     map[string]string
	Status      EmailStatus
	ThreadID    string
	ScheduledAt *time.Time
	SentAt      *time.Time
	CreatedAt   time.Time
	Metadata    map[string]any
}

// DeliveryStatus describes the delivery outcome of a sent email.
// Fields the server did not report stay zero-valued.
type DeliveryStatus struct {
	Status        EmailStatus
	DeliveredAt   *time.Time
	FailureReason string
	BounceType    string
	Opens         int
	Clicks        int
	LastOpenedAt  *time.Time
	LastClickedAt *time.Time
}

func recipientsFromAPI(rs []api.Recipient) []Recipient {
	if rs == nil {
		return nil
	}
	out := make([]Recipient, len(rs))
	for i, r := range rs {
		out[i] = Recipient{Email: r.Email, Name: r.Name}
	}
	return out
}

func recipientsToAPI(rs []Recipient) []api.Recipient {
	if rs == nil {
		return nil
	}
	out := make([]api.Recipient, len(rs))
	for i, r := range rs {
		out[i] = api.Recipient{Email: r.Email, Name: r.Name}
	}
	return out
}

func attachmentsFromAPI(as []api.Attachment) []Attachment {
	if as == nil {
		return nil
	}
	out := make([]Attachment, len(as))
	for i, a := range as {
		out[i] = Attachment{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			ContentB64:  a.Content,
			ContentID:   a.ContentID,
		}
	}
	return out
}

func attachmentsToAPI(as []Attachment) []api.Attachment {
	if as == nil {
		return nil
	}
	out := make([]api.Attachment, len(as))
	for i := range as {
		out[i] = api.Attachment{
			Filename:    as[i].Filename,
			ContentType: as[i].ContentType,
			Content:     as[i].encoded(),
			ContentID:   as[i].ContentID,
		}
	}
	return out
}

func sentEmailFromAPI(e *api.SentEmail) *SentEmail {
	return &SentEmail{
		ID:          e.ID,
		FromEmailID: e.FromEmailID,
		To:          recipientsFromAPI(e.To),
		CC:          recipientsFromAPI(e.CC),
		BCC:         recipientsFromAPI(e.BCC),
		Subject:     e.Subject,
		Text:        e.Text,
		HTML:        e.HTML,
		Attachments: attachmentsFromAPI(e.Attachments),
		Headers:     e.Headers,
		Status:      EmailStatus(e.Status),
		ThreadID:    e.ThreadID,
		ScheduledAt: e.ScheduledAt,
		SentAt:      e.SentAt,
		CreatedAt:   e.CreatedAt,
		Metadata:    e.Metadata,
	}
}

func deliveryStatusFromAPI(d *api.DeliveryStatus) *DeliveryStatus {
	return &DeliveryStatus{
		Status:        EmailStatus(d.Status),
		DeliveredAt:   d.DeliveredAt,
		FailureReason: d.FailureReason,
		BounceType:    d.BounceType,
		Opens:         d.Opens,
		Clicks:        d.Clicks,
		LastOpenedAt:  d.LastOpenedAt,
		LastClickedAt: d.LastClickedAt,
	}
}
