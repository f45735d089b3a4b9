package maylng

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// emailPattern is the basic address shape required of every recipient.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRecipients checks every recipient in a list, naming the
// offending field path (e.g. "to[2].email") on failure.
func validateRecipients(field string, recipients []Recipient) error {
	for i, r := range recipients {
		if !emailPattern.MatchString(r.Email) {
			return newValidationError(
				fmt.Sprintf("%s[%d].email", field, i),
				fmt.Sprintf("invalid email address: %q", r.Email),
			)
		}
	}
	return nil
}

// validateSendParams applies the pre-network validation rules for a
// send call, in order: sender, recipients, subject, content,
// attachments, schedule.
func validateSendParams(params *SendEmailParams) error {
	if params.FromEmailID == "" {
		return newValidationError("fromEmailId", "from email id must be a non-empty string")
	}
	if len(params.To) == 0 {
		return newValidationError("to", "at least one recipient is required")
	}
	if err := validateRecipients("to", params.To); err != nil {
		return err
	}
	if err := validateRecipients("cc", params.CC); err != nil {
		return err
	}
	if err := validateRecipients("bcc", params.BCC); err != nil {
		return err
	}
	if strings.TrimSpace(params.Subject) == "" {
		return newValidationError("subject", "subject must be a non-empty string")
	}
	if params.Text == "" && params.HTML == "" {
		return newValidationError("content", "either text or html content is required")
	}
	for i := range params.Attachments {
		if err := validateAttachment(i, &params.Attachments[i]); err != nil {
			return err
		}
	}
	if params.ScheduledAt != nil && !params.ScheduledAt.After(time.Now()) {
		return newValidationError("scheduledAt", "scheduled time must be in the future")
	}
	return nil
}

func validateAttachment(i int, a *Attachment) error {
	if a.Filename == "" {
		return newValidationError(fmt.Sprintf("attachments[%d].filename", i), "filename is required")
	}
	if a.ContentType == "" {
		return newValidationError(fmt.Sprintf("attachments[%d].contentType", i), "content type is required")
	}
	if len(a.Content) == 0 && a.ContentB64 == "" {
		return newValidationError(fmt.Sprintf("attachments[%d].content", i), "content is required")
	}
	return nil
}
