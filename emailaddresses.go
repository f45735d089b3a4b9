package maylng

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/maylng/mayl-sdk/internal/api"
)

// EmailAddressesService manages email addresses. Access it through
// Client.EmailAddresses.
type EmailAddressesService struct {
	client *Client
}

// CreateEmailAddressParams are the parameters for creating an email address.
type CreateEmailAddressParams struct {
	// Type selects temporary or persistent. Required.
	Type AddressType
	// Prefix is the desired local part prefix of the generated address.
	Prefix string
	// Domain is the desired domain of the generated address.
	Domain string
	// ExpirationMinutes sets how long a temporary address lives.
	// Must not be set for persistent addresses.
	ExpirationMinutes int
	// Metadata is an opaque map stored with the address.
	Metadata map[string]any
}

// Create creates a new email address. Validation failures surface as a
// *ValidationError before any network call.
func (s *EmailAddressesService) Create(ctx context.Context, params CreateEmailAddressParams) (*EmailAddress, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	switch params.Type {
	case AddressTypeTemporary, AddressTypePersistent:
	default:
		return nil, newValidationError("type", "type must be \"temporary\" or \"persistent\"")
	}
	if params.Type == AddressTypePersistent && params.ExpirationMinutes != 0 {
		return nil, newValidationError("expirationMinutes", "expiration must not be set for persistent addresses")
	}
	if params.ExpirationMinutes < 0 {
		return nil, newValidationError("expirationMinutes", "expiration minutes must be a positive number")
	}

	resp, err := s.client.apiClient.CreateEmailAddress(ctx, &api.CreateEmailAddressRequest{
		Type:              string(params.Type),
		Prefix:            params.Prefix,
		Domain:            params.Domain,
		ExpirationMinutes: params.ExpirationMinutes,
		Metadata:          params.Metadata,
	})
	if err != nil {
		return nil, wrapAddressError(err, "")
	}

	return emailAddressFromAPI(resp), nil
}

// Get retrieves an email address by ID.
func (s *EmailAddressesService) Get(ctx context.Context, id string) (*EmailAddress, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, newValidationError("id", "id must be a non-empty string")
	}

	resp, err := s.client.apiClient.GetEmailAddress(ctx, id)
	if err != nil {
		return nil, wrapAddressError(err, id)
	}

	return emailAddressFromAPI(resp), nil
}

// ListEmailAddressesParams filter and paginate a List call.
// Zero-valued filters are omitted from the request.
type ListEmailAddressesParams struct {
	Type   AddressType
	Status AddressStatus
	Page   int
	Limit  int
}

// List retrieves a page of email addresses.
func (s *EmailAddressesService) List(ctx context.Context, params ListEmailAddressesParams) (*Page[*EmailAddress], error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	query := url.Values{}
	if params.Type != "" {
		query.Set("type", string(params.Type))
	}
	if params.Status != "" {
		query.Set("status", string(params.Status))
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	resp, err := s.client.apiClient.ListEmailAddresses(ctx, query)
	if err != nil {
		return nil, wrapAddressError(err, "")
	}

	return pageFromAPI(resp, emailAddressFromAPI), nil
}

// UpdateEmailAddressParams are the mutable fields of an email address.
type UpdateEmailAddressParams struct {
	// Status may be set to active or disabled.
	Status AddressStatus
	// Metadata replaces the stored metadata map when non-nil.
	Metadata map[string]any
}

// Update changes the status or metadata of an email address.
func (s *EmailAddressesService) Update(ctx context.Context, id string, params UpdateEmailAddressParams) (*EmailAddress, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, newValidationError("id", "id must be a non-empty string")
	}
	switch params.Status {
	case "", AddressStatusActive, AddressStatusDisabled:
	default:
		return nil, newValidationError("status", "status must be \"active\" or \"disabled\"")
	}

	resp, err := s.client.apiClient.UpdateEmailAddress(ctx, id, &api.UpdateEmailAddressRequest{
		Status:   string(params.Status),
		Metadata: params.Metadata,
	})
	if err != nil {
		return nil, wrapAddressError(err, id)
	}

	return emailAddressFromAPI(resp), nil
}

// Delete deletes an email address.
func (s *EmailAddressesService) Delete(ctx context.Context, id string) error {
	if err := s.client.checkClosed(); err != nil {
		return err
	}
	if id == "" {
		return newValidationError("id", "id must be a non-empty string")
	}

	if err := s.client.apiClient.DeleteEmailAddress(ctx, id); err != nil {
		return wrapAddressError(err, id)
	}
	return nil
}

// Extend extends the expiration of a temporary email address by the
// given number of minutes.
func (s *EmailAddressesService) Extend(ctx context.Context, id string, additionalMinutes int) (*EmailAddress, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, newValidationError("id", "id must be a non-empty string")
	}
	if additionalMinutes <= 0 {
		return nil, newValidationError("additionalMinutes", "additional minutes must be a positive number")
	}

	resp, err := s.client.apiClient.ExtendEmailAddress(ctx, id, &api.ExtendEmailAddressRequest{
		AdditionalMinutes: additionalMinutes,
	})
	if err != nil {
		return nil, wrapAddressError(err, id)
	}

	return emailAddressFromAPI(resp), nil
}

// wrapAddressError converts transport errors from email address
// operations. A bare failed envelope becomes an *EmailAddressError;
// everything else goes through the shared taxonomy mapping.
func wrapAddressError(err error, id string) error {
	if err == nil {
		return nil
	}
	var envErr *api.EnvelopeError
	if errors.As(err, &envErr) {
		msg := envErr.Message
		if msg == "" {
			msg = "email address operation failed"
		}
		return &EmailAddressError{Message: msg, RequestID: envErr.RequestID}
	}
	return wrapError(err, "email address", id)
}
