// Package crypto seals connected-account credentials for at-rest storage.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"kindling/config"
	"kindling/internal/domain/service"
	"kindling/internal/errors"
)

const (
	keyHexLength = 64 // 32 bytes, AES-256.
	ivLength     = 12 // Standard GCM nonce size.
	tagLength    = 16
)

// aesCipher implements CredentialCipher with AES-256-GCM. The ciphertext
// format is iv:authTag:ciphertext, each part base64-encoded, so credentials
// sealed by earlier deployments of the format remain readable.
type aesCipher struct {
	key []byte
}

// NewCredentialCipher is the constructor for aesCipher.
func NewCredentialCipher(cfg *config.Config) (service.CredentialCipher, error) {
	keyHex := cfg.Encryption.Key
	if keyHex == "" {
		return nil, errors.New("encryption key is required; generate with: openssl rand -hex 32")
	}
	if len(keyHex) != keyHexLength {
		return nil, errors.Errorf("encryption key must be %d hex characters (32 bytes)", keyHexLength)
	}

	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, errors.Wrap(err, "encryption key is not valid hex")
	}

	return &aesCipher{key: key}, nil
}

// Encrypt seals a plaintext credential.
func (c *aesCipher) Encrypt(plaintext string) (string, error) {
	gcm, err := c.newGCM()
	if err != nil {
		return "", err
	}

	iv := make([]byte, ivLength)
	if _, err := rand.Read(iv); err != nil {
		return "", errors.Wrap(err, "failed to generate iv")
	}

	// Seal appends the auth tag after the ciphertext; the wire format keeps
	// them in separate fields.
	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)
	ciphertext := sealed[:len(sealed)-tagLength]
	authTag := sealed[len(sealed)-tagLength:]

	return base64.StdEncoding.EncodeToString(iv) + ":" +
		base64.StdEncoding.EncodeToString(authTag) + ":" +
		base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt opens a sealed credential. It fails on truncated input or a
// tampered authentication tag.
func (c *aesCipher) Decrypt(ciphertext string) (string, error) {
	parts := strings.Split(ciphertext, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", errors.New("invalid encrypted token format")
	}

	iv, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return "", errors.Wrap(err, "invalid iv encoding")
	}
	authTag, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", errors.Wrap(err, "invalid auth tag encoding")
	}
	sealed, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return "", errors.Wrap(err, "invalid ciphertext encoding")
	}
	if len(iv) != ivLength {
		return "", errors.New("invalid iv length")
	}

	gcm, err := c.newGCM()
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, iv, append(sealed, authTag...), nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to authenticate ciphertext")
	}

	return string(plaintext), nil
}

func (c *aesCipher) newGCM() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gcm")
	}

	return gcm, nil
}
