package maylng

import (
	"time"

	"github.com/maylng/mayl-sdk/internal/api"
)

// AddressType distinguishes expiring addresses from permanent ones.
type AddressType string

const (
	// AddressTypeTemporary is an address with a server-enforced expiration.
	AddressTypeTemporary AddressType = "temporary"
	// AddressTypePersistent is an address with no expiration.
	AddressTypePersistent AddressType = "persistent"
)

// AddressStatus is the lifecycle status of an email address.
type AddressStatus string

const (
	// AddressStatusActive means the address can send email.
	AddressStatusActive AddressStatus = "active"
	// AddressStatusExpired means the address passed its expiration time.
	AddressStatusExpired AddressStatus = "expired"
	// AddressStatusDisabled means the address was disabled by the caller.
	AddressStatusDisabled AddressStatus = "disabled"
)

// EmailAddress represents an address the caller can send from.
// A persistent address never carries an expiration; ExpiresAt is nil.
type EmailAddress struct {
	ID        string
	Email     string
	Type      AddressType
	Status    AddressStatus
	ExpiresAt *time.Time
	CreatedAt time.Time
	Metadata  map[string]any
}

func emailAddressFromAPI(a *api.EmailAddress) *EmailAddress {
	return &EmailAddress{
		ID:        a.ID,
		Email:     a.Email,
		Type:      AddressType(a.Type),
		Status:    AddressStatus(a.Status),
		ExpiresAt: a.ExpiresAt,
		CreatedAt: a.CreatedAt,
		Metadata:  a.Metadata,
	}
}

// IsExpired reports whether the address has passed its expiration time.
// Persistent addresses never expire.
func (a *EmailAddress) IsExpired() bool {
	if a.ExpiresAt == nil {
		return false
	}
	return time.Now().After(*a.ExpiresAt)
}
