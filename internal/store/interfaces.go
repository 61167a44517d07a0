// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

// Package store implements durable local persistence for the vault: a
// namespaced key-value table in SQLite holding the current envelope, the
// pending-sync flag, the remote-store credentials and the device
// identity. The envelope slot is a single row, so a concurrent load never
// observes a half-written envelope.
package store

import (
	"context"

	"github.com/dkotenko/claviger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_store_mock.go -package=mock

// VaultStore is the local persistence contract used by the sync
// orchestrator and the session controller. All methods return
// [ErrNotFound] (wrapped) when the requested slot has never been written.
type VaultStore interface {
	// SaveEnvelope overwrites the single current-envelope slot.
	SaveEnvelope(ctx context.Context, env models.Envelope) error

	// LoadEnvelope returns the last saved envelope. ErrNotFound signals
	// first run, not a failure.
	LoadEnvelope(ctx context.Context) (models.Envelope, error)

	// MarkPending durably records that the last local save has not been
	// mirrored to the remote store.
	MarkPending(ctx context.Context) error

	// ClearPending removes the pending-sync flag.
	ClearPending(ctx context.Context) error

	// HasPending reports whether a pending-sync flag is set. A missing
	// flag reads as false.
	HasPending(ctx context.Context) (bool, error)

	// SaveCredentials persists the remote-store credential tuple. The
	// credentials live outside the encrypted vault on purpose: the two
	// secrets have independent blast radii.
	SaveCredentials(ctx context.Context, creds models.SyncCredentials) error

	// LoadCredentials returns the persisted credential tuple, or
	// ErrNotFound if sync has never been configured.
	LoadCredentials(ctx context.Context) (models.SyncCredentials, error)

	// DeviceID returns the durable identity of this device, generating
	// and persisting one on first call.
	DeviceID(ctx context.Context) (string, error)

	// Clear erases the envelope and the pending flag together. Used only
	// for an explicit, user-confirmed vault reset; credentials and the
	// device id survive.
	Clear(ctx context.Context) error
}
