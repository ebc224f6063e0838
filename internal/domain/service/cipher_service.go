package service

// CredentialCipher encrypts external platform credentials for at-rest
// storage. The ciphertext format is iv:authTag:ciphertext, each part
// base64-encoded and colon-delimited; any implementation must preserve it
// so previously stored credentials stay readable.
type CredentialCipher interface {
	// Encrypt seals a plaintext credential.
	Encrypt(plaintext string) (string, error)

	// Decrypt opens a sealed credential. It fails on truncated input or a
	// tampered authentication tag; it never returns garbage.
	Decrypt(ciphertext string) (string, error)
}
