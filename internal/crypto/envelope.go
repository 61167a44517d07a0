// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/dkotenko/claviger/models"
)

const (
	saltLen = 16
	ivLen   = 12
)

// envelopeService is the private implementation of [EnvelopeService].
type envelopeService struct {
	// PBKDF2 tuning parameters. Stored in the struct so the work factor
	// can be adjusted per deployment target and dialed down in tests.
	iterations int
	keyLen     int
}

// NewEnvelopeService constructs an [EnvelopeService] with the
// PBKDF2-HMAC-SHA256 parameters recommended by OWASP (2023):
//   - iterations: 600,000
//   - key length: 32 bytes (256 bits)
func NewEnvelopeService() EnvelopeService {
	return NewEnvelopeServiceWithIterations(600_000)
}

// NewEnvelopeServiceWithIterations constructs an [EnvelopeService] with
// an explicit PBKDF2 iteration count, for deployment targets where the
// default work factor is too slow (and for fast test suites). Envelopes
// remain interoperable across iteration counts only when the counts
// match, so production callers should stick to [NewEnvelopeService].
func NewEnvelopeServiceWithIterations(iterations int) EnvelopeService {
	return &envelopeService{
		iterations: iterations,
		keyLen:     32, // 256 bits
	}
}

// DeriveKey implements [EnvelopeService].
func (s *envelopeService) DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, s.iterations, s.keyLen, sha256.New)
}

// Encrypt implements [EnvelopeService]. It reads a fresh 16-byte salt and
// 12-byte nonce from the OS CSPRNG, derives the key, and seals the UTF-8
// plaintext with AES-256-GCM. Regenerating the salt on every call makes
// the derived key unique per operation, so (key, nonce) reuse is
// structurally impossible.
func (s *envelopeService) Encrypt(plaintext, password string) (models.Envelope, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return models.Envelope{}, fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := s.gcm(password, salt)
	if err != nil {
		return models.Envelope{}, err
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return models.Envelope{}, fmt.Errorf("generate iv: %w", err)
	}

	ciphertext := gcm.Seal(nil, iv, []byte(plaintext), nil)

	return models.Envelope{
		Salt:       base64.StdEncoding.EncodeToString(salt),
		IV:         base64.StdEncoding.EncodeToString(iv),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

// Decrypt implements [EnvelopeService]. Every failure mode — malformed
// base64, a truncated field, a GCM tag mismatch — collapses into
// [ErrAuthentication] so callers cannot tell a wrong password from a
// tampered envelope.
func (s *envelopeService) Decrypt(env models.Envelope, password string) (string, error) {
	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil {
		return "", fmt.Errorf("decode salt: %w", ErrAuthentication)
	}
	iv, err := base64.StdEncoding.DecodeString(env.IV)
	if err != nil {
		return "", fmt.Errorf("decode iv: %w", ErrAuthentication)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("decode ciphertext: %w", ErrAuthentication)
	}

	gcm, err := s.gcm(password, salt)
	if err != nil {
		return "", err
	}
	if len(iv) != gcm.NonceSize() {
		return "", fmt.Errorf("iv length %d: %w", len(iv), ErrAuthentication)
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("open envelope: %w", ErrAuthentication)
	}

	return string(plaintext), nil
}

// Verify implements [EnvelopeService]. It attempts a full decrypt and
// swallows the result — a pure password check.
func (s *envelopeService) Verify(env models.Envelope, password string) bool {
	_, err := s.Decrypt(env, password)
	return err == nil
}

func (s *envelopeService) gcm(password string, salt []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.DeriveKey(password, salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
