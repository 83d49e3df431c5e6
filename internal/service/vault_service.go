package service

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

// SecretboxVault implements ports.SecretVault using NaCl secretbox
// (XSalsa20-Poly1305). Custodial private keys are sealed before they reach
// the database and opened only by the export tool.
type SecretboxVault struct {
	key [32]byte
}

// NewSecretboxVault creates a vault from a 32-byte hex-encoded key.
func NewSecretboxVault(hexKey string) (*SecretboxVault, error) {
	raw, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decoding vault key: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("vault key must be 32 bytes, got %d", len(raw))
	}

	v := &SecretboxVault{}
	copy(v.key[:], raw)
	return v, nil
}

// Seal encrypts secret with a random nonce and returns base64(nonce||box).
func (v *SecretboxVault) Seal(secret []byte) (string, error) {
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], secret, &nonce, &v.key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a value produced by Seal.
func (v *SecretboxVault) Open(sealed string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return nil, fmt.Errorf("decoding sealed secret: %w", err)
	}
	if len(raw) < 24 {
		return nil, fmt.Errorf("sealed secret too short")
	}

	var nonce [24]byte
	copy(nonce[:], raw[:24])

	secret, ok := secretbox.Open(nil, raw[24:], &nonce, &v.key)
	if !ok {
		return nil, fmt.Errorf("opening sealed secret: authentication failed")
	}
	return secret, nil
}
