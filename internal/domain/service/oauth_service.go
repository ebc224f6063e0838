package service

import "context"

// OAuthProfile represents the user profile returned by the login provider.
type OAuthProfile struct {
	ID        int64  // Provider-assigned account id, stable across logins.
	Login     string // Provider username.
	Email     string // Public email, may be empty.
	AvatarURL string // Profile picture URL, may be empty.
}

// OAuthService defines the server-side GitHub login flow: build the
// authorization URL, then exchange the callback code for the user profile.
type OAuthService interface {
	// BuildAuthorizationURL returns the provider URL to redirect the
	// browser to, carrying the opaque CSRF state.
	BuildAuthorizationURL(state string) string

	// ExchangeCode trades the callback authorization code for the
	// provider profile of the signed-in user.
	ExchangeCode(ctx context.Context, code string) (*OAuthProfile, error)
}
