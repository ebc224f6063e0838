package entity

import (
	"time"

	"github.com/google/uuid"
)

// Provider identifies an external publishing platform.
type Provider string

const (
	ProviderBluesky  Provider = "bluesky"
	ProviderLinkedIn Provider = "linkedin"
)

// Providers lists every supported external platform.
var Providers = []Provider{ProviderBluesky, ProviderLinkedIn}

// Valid reports whether p is a supported provider.
func (p Provider) Valid() bool {
	for _, v := range Providers {
		if p == v {
			return true
		}
	}

	return false
}

// ConnectedAccount links an external platform credential to a user.
// Tokens are stored encrypted (AES-256-GCM, see infra/crypto) and are never
// returned to clients. At most one account exists per (user, provider);
// reconnecting updates the record in place.
type ConnectedAccount struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Provider          Provider
	ProviderAccountID string // Stable id at the provider, e.g. a Bluesky DID.
	Username          string
	AccessToken       string  // Encrypted.
	RefreshToken      *string // Encrypted, if the provider issues one.
	ExpiresAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Owner implements Owned.
func (a *ConnectedAccount) Owner() uuid.UUID {
	return a.UserID
}
