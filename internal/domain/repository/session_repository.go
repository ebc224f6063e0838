package repository

import (
	"context"
	"errors"
	"time"

	"kindling/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session exists for the given id.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists server-side login sessions. Session ids are
// SHA-256 hashes of the bearer token, never the token itself.
type SessionRepository interface {
	// FindByID retrieves a session by its hashed id.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// UpdateExpiry moves a session's absolute expiry forward.
	UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}
