package crypto

import (
	"strings"
	"testing"

	"kindling/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newCipherForTest(t *testing.T) *aesCipher {
	t.Helper()

	cfg := &config.Config{}
	cfg.Encryption.Key = testKeyHex

	cipher, err := NewCredentialCipher(cfg)
	require.NoError(t, err)

	return cipher.(*aesCipher)
}

func TestNewCredentialCipher_KeyValidation(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "empty key", key: ""},
		{name: "too short", key: "abcdef"},
		{name: "not hex", key: strings.Repeat("zz", 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Encryption.Key = tt.key

			_, err := NewCredentialCipher(cfg)
			assert.Error(t, err)
		})
	}
}

func TestAESCipher_RoundTrip(t *testing.T) {
	cipher := newCipherForTest(t)

	plaintexts := []string{
		"eyJhbGciOiJFUzI1NksifQ.access-jwt",
		"unicode: héllo wörld 你好",
	}

	for _, plaintext := range plaintexts {
		sealed, err := cipher.Encrypt(plaintext)
		require.NoError(t, err)

		opened, err := cipher.Decrypt(sealed)
		require.NoError(t, err)
		assert.Equal(t, plaintext, opened)
	}
}

func TestAESCipher_CiphertextFormat(t *testing.T) {
	cipher := newCipherForTest(t)

	sealed, err := cipher.Encrypt("credential")
	require.NoError(t, err)

	parts := strings.Split(sealed, ":")
	require.Len(t, parts, 3)
	for _, part := range parts {
		assert.NotEmpty(t, part)
	}
}

func TestAESCipher_FreshNoncePerCall(t *testing.T) {
	cipher := newCipherForTest(t)

	first, err := cipher.Encrypt("credential")
	require.NoError(t, err)
	second, err := cipher.Encrypt("credential")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestAESCipher_Decrypt_RejectsTampering(t *testing.T) {
	cipher := newCipherForTest(t)

	sealed, err := cipher.Encrypt("credential")
	require.NoError(t, err)

	parts := strings.Split(sealed, ":")
	// Swap the auth tag for one from a different message.
	other, err := cipher.Encrypt("different")
	require.NoError(t, err)
	otherParts := strings.Split(other, ":")

	tampered := parts[0] + ":" + otherParts[1] + ":" + parts[2]
	_, err = cipher.Decrypt(tampered)
	assert.Error(t, err)
}

func TestAESCipher_Decrypt_RejectsMalformedInput(t *testing.T) {
	cipher := newCipherForTest(t)

	inputs := []string{
		"",
		"not-sealed",
		"a:b",
		"a:b:c:d",
		"::",
		"!!!:!!!:!!!",
	}

	for _, input := range inputs {
		_, err := cipher.Decrypt(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestAESCipher_Decrypt_RejectsWrongKey(t *testing.T) {
	cipher := newCipherForTest(t)

	sealed, err := cipher.Encrypt("credential")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Encryption.Key = strings.Repeat("ff", 32)
	otherCipher, err := NewCredentialCipher(cfg)
	require.NoError(t, err)

	_, err = otherCipher.Decrypt(sealed)
	assert.Error(t, err)
}
