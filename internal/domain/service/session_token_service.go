package service

// SessionTokenService issues and hashes opaque session bearer tokens.
// Only the hash is ever persisted; the raw token lives in the cookie.
type SessionTokenService interface {
	// GenerateToken returns a fresh random bearer token.
	GenerateToken() (string, error)

	// HashToken derives the stored session id (SHA-256 hex) from a token.
	HashToken(token string) string
}
