package usecase

import (
	"context"
	"time"

	"kindling/internal/domain/entity"
	"kindling/internal/domain/service"
)

// LoginOutput returns the session issued after a successful OAuth callback.
// Token is the raw bearer value for the cookie; only its hash is stored.
type LoginOutput struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
}

// AuthUsecase drives login, session validation and logout.
type AuthUsecase interface {
	// LoginWithGitHub upserts the user for the given provider profile and
	// issues a fresh session. Profile fields are refreshed on every login.
	LoginWithGitHub(ctx context.Context, profile *service.OAuthProfile) (*LoginOutput, error)

	// ValidateSession resolves a raw bearer token to its user and session.
	// Expired sessions are deleted, not just ignored. A session close to
	// expiry has its expiry extended; the returned session reflects that.
	// Returns (nil, nil, nil) when the token does not resolve.
	ValidateSession(ctx context.Context, token string) (*entity.User, *entity.Session, error)

	// Logout deletes the session for the given raw token.
	Logout(ctx context.Context, token string) error
}
