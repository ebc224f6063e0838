package auth

import (
	"testing"
	"time"

	"kindling/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_IssueSyncToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.Sync.Secret = "shared-sync-secret"
	cfg.Sync.TokenTTL = time.Hour

	service, err := NewJWTService(cfg)
	require.NoError(t, err)

	userID := uuid.New()
	signed, err := service.IssueSyncToken(userID)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (any, error) {
		return []byte("shared-sync-secret"), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, userID.String(), claims["sub"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, 5*time.Second)
}

func TestJWTService_RejectedByWrongSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Sync.Secret = "shared-sync-secret"
	cfg.Sync.TokenTTL = time.Hour

	service, err := NewJWTService(cfg)
	require.NoError(t, err)

	signed, err := service.IssueSyncToken(uuid.New())
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return []byte("different-secret"), nil
	})
	assert.Error(t, err)
}
