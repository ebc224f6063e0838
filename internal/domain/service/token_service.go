package service

import "github.com/google/uuid"

// SyncTokenService mints the short-lived connection token the client hands
// to the external sync engine. The engine validates it with the shared
// secret; the 'sub' claim must match the user id in the database.
// This token is never used for request dispatch, which relies on the
// server-side session cookie instead.
type SyncTokenService interface {
	// IssueSyncToken creates a signed token for the given user.
	IssueSyncToken(userID uuid.UUID) (string, error)
}
