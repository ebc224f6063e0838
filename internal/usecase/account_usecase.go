package usecase

import (
	"context"
	"time"

	"kindling/internal/domain/entity"

	"github.com/google/uuid"
)

// ConnectedAccountView is the client-facing shape of a connected account.
// Credential material never leaves the server.
type ConnectedAccountView struct {
	ID                uuid.UUID       `json:"id"`
	Provider          entity.Provider `json:"provider"`
	ProviderAccountID string          `json:"providerAccountId"`
	Username          string          `json:"username"`
	ExpiresAt         *time.Time      `json:"expiresAt"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ConnectBlueskyInput carries the app-password login for Bluesky.
type ConnectBlueskyInput struct {
	Identifier string `json:"identifier" validate:"required,min=1"`
	Password   string `json:"password" validate:"required,min=1"`
}

// ImportOutput summarizes one import run.
type ImportOutput struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"` // Already-imported posts matched by provenance.
}

// AccountUsecase manages external platform connections and post imports.
type AccountUsecase interface {
	// ListAccounts returns the caller's connected accounts, tokens redacted.
	ListAccounts(ctx context.Context, caller uuid.UUID) ([]*ConnectedAccountView, error)

	// ConnectBluesky authenticates against Bluesky with an app password and
	// stores the encrypted credentials, updating in place on reconnect.
	ConnectBluesky(ctx context.Context, caller uuid.UUID, input *ConnectBlueskyInput) (*ConnectedAccountView, error)

	// Disconnect removes the caller's account for a provider.
	Disconnect(ctx context.Context, caller uuid.UUID, provider entity.Provider) error

	// ImportPosts fetches the caller's recent posts from the provider and
	// captures them as artifacts, deduplicated by import provenance.
	ImportPosts(ctx context.Context, caller uuid.UUID, provider entity.Provider) (*ImportOutput, error)
}
