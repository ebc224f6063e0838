// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"

	"kindling/internal/domain/service"
	"kindling/internal/errors"
)

const sessionTokenBytes = 20

// lowercase base32 without padding keeps tokens cookie- and URL-safe.
var tokenEncoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// sessionTokenService issues opaque bearer tokens and derives the hashed
// session ids stored in the database.
type sessionTokenService struct{}

// NewSessionTokenService is the constructor for sessionTokenService.
func NewSessionTokenService() service.SessionTokenService {
	return &sessionTokenService{}
}

// GenerateToken returns a fresh random bearer token.
func (s *sessionTokenService) GenerateToken() (string, error) {
	raw := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return tokenEncoding.EncodeToString(raw), nil
}

// HashToken derives the stored session id from a raw token. The database
// only ever sees this digest, so a leaked sessions table cannot be replayed.
func (s *sessionTokenService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
