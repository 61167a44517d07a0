// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

// Package crypto implements the envelope codec: password-based key
// derivation and the authenticated-encryption envelope format that is the
// only at-rest and on-wire representation of vault contents.
//
// The codec knows nothing about storage or transport. Its single job is
// to turn (plaintext, password) into an opaque [models.Envelope] and back.
package crypto

import "github.com/dkotenko/claviger/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_service_mock.go -package=mock

// EnvelopeService converts between plaintext vault JSON and the encrypted
// envelope. Wrong password and corrupted envelope are indistinguishable
// to callers — both surface as [ErrAuthentication].
type EnvelopeService interface {
	// DeriveKey stretches the master password and salt into a 256-bit
	// symmetric key with PBKDF2-HMAC-SHA256. Deliberately slow: the
	// iteration cost is the only brute-force mitigation in the system.
	// Deterministic for identical (password, salt).
	DeriveKey(password string, salt []byte) []byte

	// Encrypt seals plaintext under password with AES-256-GCM using a
	// fresh random salt and nonce. Encrypting the same input twice
	// yields different envelopes.
	Encrypt(plaintext, password string) (models.Envelope, error)

	// Decrypt opens the envelope with the given password. It returns the
	// exact original plaintext, or an error wrapping [ErrAuthentication]
	// if the password is wrong or the envelope was tampered with.
	Decrypt(env models.Envelope, password string) (string, error)

	// Verify reports whether password opens the envelope, without
	// exposing the plaintext to the caller.
	Verify(env models.Envelope, password string) bool
}
