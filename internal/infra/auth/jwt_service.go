package auth

import (
	"time"

	"kindling/config"
	"kindling/internal/domain/service"
	"kindling/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService mints the HS256 token the client hands to the external sync
// engine. The engine validates it with the same shared secret and trusts the
// 'sub' claim as the user id.
type jwtService struct {
	secret string
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.SyncTokenService, error) {
	if cfg.Sync.Secret == "" {
		return nil, errors.New("sync token secret must be provided")
	}

	return &jwtService{
		secret: cfg.Sync.Secret,
		ttl:    cfg.Sync.TokenTTL,
	}, nil
}

// IssueSyncToken creates a signed token for the given user.
func (s *jwtService) IssueSyncToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign sync token")
	}

	return token, nil
}
