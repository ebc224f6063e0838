package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a server-side login credential. The id is the SHA-256
// hex digest of the bearer token handed to the client; the raw token is
// never stored.
type Session struct {
	ID        string    // SHA-256 hash of the session token, 64 hex characters.
	UserID    uuid.UUID // The user this session authenticates.
	ExpiresAt time.Time // Absolute expiry. Expired sessions are deleted on validation.
}

// Expired reports whether the session has passed its absolute expiry.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// ShouldRenew reports whether the session is close enough to expiry that
// validation should extend it, keeping active users signed in.
func (s *Session) ShouldRenew(now time.Time, renewWithin time.Duration) bool {
	return now.After(s.ExpiresAt.Add(-renewWithin))
}
