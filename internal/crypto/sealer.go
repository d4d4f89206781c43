// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// keyLen is the AES-256 key size.
const keyLen = 32

// sessionInfo domain-separates session keys from any other key derived
// from the same secret.
const sessionInfo = "travel-journal/session/v1"

// ErrEmptySecret is returned by NewSealer for an empty secret.
var ErrEmptySecret = errors.New("empty sealing secret")

// aesSealer is the private implementation of [Sealer].
type aesSealer struct {
	aead cipher.AEAD
}

// NewSealer derives an AES-256-GCM key from secret with HKDF-SHA256 and
// returns a [Sealer] using it.
func NewSealer(secret string) (Sealer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := make([]byte, keyLen)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(sessionInfo)), key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &aesSealer{aead: gcm}, nil
}

// Seal implements [Sealer]. The output is a Base64 (raw URL encoding)
// string of the blob: nonce (12 bytes) ‖ ciphertext.
func (s *aesSealer) Seal(v any) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal data: %w", err)
	}

	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := s.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(blob), nil
}

// Open implements [Sealer].
func (s *aesSealer) Open(encoded string, target any) error {
	blob, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("decode base64: %w", err)
	}

	nonceSize := s.aead.NonceSize()
	if len(blob) < nonceSize {
		return fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return fmt.Errorf("decrypt data: %w", err)
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}

	return nil
}
