// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record for a person signed in through GitHub.
// Profile fields are refreshed from the provider on every login.
type User struct {
	ID        uuid.UUID // The unique identifier for the user (UUIDv7).
	GitHubID  int64     // The provider-assigned account id. Unique across all users.
	Username  string    // The GitHub login at the time of the last sign-in.
	Email     string    // Optional public email from the provider profile.
	AvatarURL string    // Optional avatar image URL from the provider profile.
	CreatedAt time.Time // Timestamp of the first successful OAuth callback.
	UpdatedAt time.Time // Timestamp of the last profile refresh.
}
