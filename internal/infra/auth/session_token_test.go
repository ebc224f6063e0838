package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenService_GenerateToken(t *testing.T) {
	service := NewSessionTokenService()

	token, err := service.GenerateToken()
	require.NoError(t, err)

	// 20 random bytes encode to 32 base32 characters.
	assert.Len(t, token, 32)
	for _, r := range token {
		valid := (r >= 'a' && r <= 'z') || (r >= '2' && r <= '7')
		assert.True(t, valid, "unexpected character %q in token", r)
	}

	second, err := service.GenerateToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, second)
}

func TestSessionTokenService_HashToken(t *testing.T) {
	service := NewSessionTokenService()

	hash := service.HashToken("opaque-token")

	sum := sha256.Sum256([]byte("opaque-token"))
	assert.Equal(t, hex.EncodeToString(sum[:]), hash)

	// Stable across calls, distinct across inputs.
	assert.Equal(t, hash, service.HashToken("opaque-token"))
	assert.NotEqual(t, hash, service.HashToken("other-token"))
}
