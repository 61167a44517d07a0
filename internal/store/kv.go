// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dkotenko/claviger/internal/logger"
	"github.com/dkotenko/claviger/models"
)

// Namespaced keys of the kv table. Namespacing keeps the slots from
// colliding with anything else that may share the database file.
const (
	keyEnvelope    = "claviger/envelope"
	keyPending     = "claviger/pending"
	keyCredentials = "claviger/credentials"
	keyDeviceID    = "claviger/device-id"
)

type vaultStore struct {
	db     *DB
	logger *logger.Logger
}

// NewVaultStore constructs the SQLite-backed [VaultStore].
func NewVaultStore(db *DB, log *logger.Logger) VaultStore {
	return &vaultStore{db: db, logger: log}
}

func (s *vaultStore) SaveEnvelope(ctx context.Context, env models.Envelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	return s.set(ctx, keyEnvelope, payload)
}

func (s *vaultStore) LoadEnvelope(ctx context.Context) (models.Envelope, error) {
	payload, err := s.get(ctx, keyEnvelope)
	if err != nil {
		return models.Envelope{}, err
	}

	var env models.Envelope
	if err = json.Unmarshal(payload, &env); err != nil {
		return models.Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return env, nil
}

func (s *vaultStore) MarkPending(ctx context.Context) error {
	return s.set(ctx, keyPending, []byte("1"))
}

func (s *vaultStore) ClearPending(ctx context.Context) error {
	return s.del(ctx, keyPending)
}

func (s *vaultStore) HasPending(ctx context.Context) (bool, error) {
	if _, err := s.get(ctx, keyPending); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *vaultStore) SaveCredentials(ctx context.Context, creds models.SyncCredentials) error {
	payload, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	return s.set(ctx, keyCredentials, payload)
}

func (s *vaultStore) LoadCredentials(ctx context.Context) (models.SyncCredentials, error) {
	payload, err := s.get(ctx, keyCredentials)
	if err != nil {
		return models.SyncCredentials{}, err
	}

	var creds models.SyncCredentials
	if err = json.Unmarshal(payload, &creds); err != nil {
		return models.SyncCredentials{}, fmt.Errorf("decode credentials: %w", err)
	}
	return creds, nil
}

func (s *vaultStore) DeviceID(ctx context.Context) (string, error) {
	payload, err := s.get(ctx, keyDeviceID)
	if err == nil {
		return string(payload), nil
	}
	if !errors.Is(err, ErrNotFound) {
		return "", err
	}

	id := newDeviceID()
	if err = s.set(ctx, keyDeviceID, []byte(id)); err != nil {
		return "", err
	}
	return id, nil
}

// Clear removes the envelope and the pending flag in one transaction so
// a reset never leaves a stale pending marker behind.
func (s *vaultStore) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin clear transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, key := range []string{keyEnvelope, keyPending} {
		if _, err = tx.ExecContext(ctx, deleteValue, key); err != nil {
			s.logger.Err(err).Str("func", "vaultStore.Clear").Str("key", key).Msg("failed to delete key")
			return fmt.Errorf("delete %s: %w", key, ErrExecutingQuery)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit clear transaction: %w", err)
	}
	return nil
}

func (s *vaultStore) set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, upsertValue, key, value); err != nil {
		s.logger.Err(err).Str("func", "vaultStore.set").Str("key", key).Msg("failed to upsert value")
		return fmt.Errorf("upsert %s: %w", key, ErrExecutingQuery)
	}
	return nil
}

func (s *vaultStore) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, selectValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("key %s: %w", key, ErrNotFound)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "vaultStore.get").Str("key", key).Msg("failed to query value")
		return nil, fmt.Errorf("select %s: %w", key, ErrExecutingQuery)
	}
	return value, nil
}

func (s *vaultStore) del(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, deleteValue, key); err != nil {
		s.logger.Err(err).Str("func", "vaultStore.del").Str("key", key).Msg("failed to delete key")
		return fmt.Errorf("delete %s: %w", key, ErrExecutingQuery)
	}
	return nil
}

func newDeviceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
