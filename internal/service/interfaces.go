// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

// Package service contains the two stateful cores of claviger: the sync
// orchestrator, which decides where envelopes are written and read, and
// the session controller, which owns the decrypted vault for the
// lifetime of an unlocked session.
package service

import (
	"context"

	"github.com/dkotenko/claviger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncOrchestrator implements the dual-write save path and the
// pull-first load path over the local store and the remote store.
type SyncOrchestrator interface {
	// Save writes env to the local store (must succeed), then mirrors it
	// to the remote store best-effort. A failed push sets the durable
	// pending-sync flag and is swallowed: local durability is never
	// blocked by network conditions.
	Save(ctx context.Context, env models.Envelope) error

	// Load returns the freshest envelope available: remote when
	// reachable (overwriting the local copy, remote-wins), local
	// otherwise. Returns an error wrapping [store.ErrNotFound] only when
	// no envelope exists anywhere — the first-run signal.
	Load(ctx context.Context) (models.Envelope, error)

	// Pending reports the durable pending-sync flag.
	Pending(ctx context.Context) (bool, error)

	// Flush re-pushes the locally stored envelope if the pending flag is
	// set. Unlike Save's best-effort push, a Flush failure is returned,
	// so a user-initiated "sync now" can report it.
	Flush(ctx context.Context) error
}

// State is the session lifecycle phase.
type State int

const (
	StateLocked State = iota
	StateUnlocking
	StateUnlocked
)

// UnlockResult reports how an unlock completed.
type UnlockResult struct {
	// FirstRun is true when no envelope existed anywhere and a fresh
	// empty vault was created under the supplied password.
	FirstRun bool
}

// SessionService is the session/vault controller: the sole holder of the
// decrypted vault and the master password while unlocked, and the sole
// caller of the envelope codec and the sync orchestrator.
//
// Every vault-mutating operation follows the same pattern: validate,
// mutate in memory, serialize the whole vault, encrypt, save. There is
// no incremental persistence — the vault is small enough that whole-file
// re-encryption per edit is cheap and it keeps the persisted envelope
// and the in-memory state from ever diverging.
type SessionService interface {
	// State returns the current lifecycle phase.
	State() State

	// Unlock loads and decrypts the vault with password. When no
	// envelope exists anywhere, this is first run: an empty vault is
	// created, the password is adopted as the master password and the
	// vault is persisted immediately. A wrong password surfaces as an
	// error wrapping [crypto.ErrAuthentication] and leaves the session
	// locked with no partial state change.
	Unlock(ctx context.Context, password string) (UnlockResult, error)

	// Lock wipes the password and vault from memory and disarms the
	// auto-lock timer. Callable at any time, idempotent.
	Lock()

	// Touch signals user activity, re-arming the auto-lock timer while
	// unlocked. A no-op while locked.
	Touch()

	// ChangePassword re-verifies oldPassword against the currently
	// persisted envelope, re-encrypts the vault under newPassword with a
	// fresh salt and iv, persists, then forces Lock so the user
	// re-authenticates with the new credential.
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error

	// TableNames returns the sorted table names of the unlocked vault.
	TableNames() ([]string, error)

	// Table returns a deep copy of the named table.
	Table(name string) (*models.Table, error)

	CreateTable(ctx context.Context, name string, columns ...string) error
	RenameTable(ctx context.Context, oldName, newName string) error
	DeleteTable(ctx context.Context, name string) error

	AddColumn(ctx context.Context, table, column string) error
	RenameColumn(ctx context.Context, table, oldColumn, newColumn string) error
	DeleteColumn(ctx context.Context, table, column string) error

	AddRow(ctx context.Context, table string, cells ...string) (int, error)
	UpdateCell(ctx context.Context, table string, row int, column, value string) error
	DeleteRow(ctx context.Context, table string, row int) error

	// ImportCSV creates or replaces a table from CSV text; the first
	// record holds the column names.
	ImportCSV(ctx context.Context, table, data string) error

	// ExportCSV renders the named table as CSV text.
	ExportCSV(table string) (string, error)

	// ExportBackup dumps the decrypted vault as indented JSON. Produced
	// on explicit user request only and never persisted by claviger —
	// a conscious plaintext exception the user opts into.
	ExportBackup() (string, error)

	// SaveSyncSettings persists the remote credential tuple and hands it
	// to the transport.
	SaveSyncSettings(ctx context.Context, creds models.SyncCredentials) error

	// SyncSettings returns the persisted credential tuple.
	SyncSettings(ctx context.Context) (models.SyncCredentials, error)

	// TestSyncSettings checks that creds can reach the remote store,
	// without saving them or touching remote data.
	TestSyncSettings(ctx context.Context, creds models.SyncCredentials) error

	// SyncNow retries a pending push immediately.
	SyncNow(ctx context.Context) error

	// PendingSync reports whether the last save has not reached the
	// remote store.
	PendingSync(ctx context.Context) (bool, error)
}
