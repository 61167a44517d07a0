// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkotenko/claviger/internal/adapter"
	"github.com/dkotenko/claviger/internal/logger"
	"github.com/dkotenko/claviger/internal/store"
	"github.com/dkotenko/claviger/models"
)

type syncOrchestrator struct {
	local  store.VaultStore
	remote adapter.RemoteStore
	logger *logger.Logger
}

// NewSyncOrchestrator wires the dual-write save path over the local and
// remote stores.
func NewSyncOrchestrator(local store.VaultStore, remote adapter.RemoteStore, log *logger.Logger) SyncOrchestrator {
	return &syncOrchestrator{local: local, remote: remote, logger: log}
}

// Save implements [SyncOrchestrator]. Local first, always; remote
// best-effort afterwards. Remote failures of any kind — offline,
// unauthorized, conflict — degrade to the pending-sync flag, never to an
// error: the caller observes a successful save whenever local
// persistence succeeded. A failed push is retried opportunistically on
// the next save, not on a timer.
func (s *syncOrchestrator) Save(ctx context.Context, env models.Envelope) error {
	if err := s.local.SaveEnvelope(ctx, env); err != nil {
		return fmt.Errorf("save envelope locally: %w", err)
	}

	if err := s.remote.Push(ctx, env); err != nil {
		s.logger.Warn().Err(err).Str("func", "syncOrchestrator.Save").Msg("remote push failed, marking pending")
		if markErr := s.local.MarkPending(ctx); markErr != nil {
			s.logger.Err(markErr).Str("func", "syncOrchestrator.Save").Msg("failed to mark pending flag")
		}
		return nil
	}

	if err := s.local.ClearPending(ctx); err != nil {
		s.logger.Err(err).Str("func", "syncOrchestrator.Save").Msg("failed to clear pending flag")
	}
	return nil
}

// Load implements [SyncOrchestrator]. Remote is assumed authoritative
// when reachable: a successful pull overwrites the local copy and wins.
// Any pull failure — including not-found — falls back to the local
// store. A device that edited offline keeps serving its local copy until
// its next save pushes it; no reconciliation is attempted.
func (s *syncOrchestrator) Load(ctx context.Context) (models.Envelope, error) {
	env, err := s.remote.Pull(ctx)
	if err == nil {
		if saveErr := s.local.SaveEnvelope(ctx, env); saveErr != nil {
			s.logger.Err(saveErr).Str("func", "syncOrchestrator.Load").Msg("failed to mirror remote envelope locally")
		}
		return env, nil
	}

	if !errors.Is(err, adapter.ErrNotFound) && !errors.Is(err, adapter.ErrNotConfigured) {
		s.logger.Warn().Err(err).Str("func", "syncOrchestrator.Load").Msg("remote pull failed, falling back to local store")
	}

	return s.local.LoadEnvelope(ctx)
}

// Pending implements [SyncOrchestrator].
func (s *syncOrchestrator) Pending(ctx context.Context) (bool, error) {
	return s.local.HasPending(ctx)
}

// Flush implements [SyncOrchestrator]. No-op when nothing is pending.
func (s *syncOrchestrator) Flush(ctx context.Context) error {
	pending, err := s.local.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("read pending flag: %w", err)
	}
	if !pending {
		return nil
	}

	env, err := s.local.LoadEnvelope(ctx)
	if err != nil {
		return fmt.Errorf("load envelope for flush: %w", err)
	}

	if err = s.remote.Push(ctx, env); err != nil {
		return fmt.Errorf("flush push: %w", err)
	}

	if err = s.local.ClearPending(ctx); err != nil {
		s.logger.Err(err).Str("func", "syncOrchestrator.Flush").Msg("failed to clear pending flag")
	}
	return nil
}
