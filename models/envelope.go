// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

package models

// Envelope is the only persisted and transmitted representation of vault
// contents: a salted, authenticated-encrypted blob. All three fields are
// base64 (standard encoding) so the envelope survives any text transport.
//
// An envelope is opaque without the master password. Decryption either
// yields the exact original plaintext or fails — AES-GCM turns any bit
// flip into an authentication failure, never into corrupted plaintext.
type Envelope struct {
	// Salt is the 16-byte random salt used to derive the encryption key
	// from the master password. Regenerated on every encryption, which
	// makes the derived key — and therefore the (key, iv) pair — unique
	// per operation.
	Salt string `json:"salt"`

	// IV is the 12-byte random GCM nonce for this envelope.
	IV string `json:"iv"`

	// Ciphertext is the encrypted vault JSON including the GCM
	// authentication tag.
	Ciphertext string `json:"ciphertext"`
}

// IsZero reports whether the envelope carries no data at all. Used to
// distinguish "no vault yet" from an actual envelope in transport code.
func (e Envelope) IsZero() bool {
	return e.Salt == "" && e.IV == "" && e.Ciphertext == ""
}
