// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dkotenko/claviger/internal/adapter"
	"github.com/dkotenko/claviger/internal/crypto"
	"github.com/dkotenko/claviger/internal/logger"
	"github.com/dkotenko/claviger/internal/store"
	"github.com/dkotenko/claviger/internal/validators"
	"github.com/dkotenko/claviger/models"
)

type sessionService struct {
	codec        crypto.EnvelopeService
	orchestrator SyncOrchestrator
	local        store.VaultStore
	remote       adapter.RemoteStore
	logger       *logger.Logger

	autoLockTimeout time.Duration

	// mu serializes the whole mutate-then-persist sequence. Two racing
	// mutations would otherwise produce a lost update: the later save
	// wins and silently discards the earlier in-memory delta.
	mu       sync.Mutex
	state    State
	password string
	vault    *models.Vault
	timer    *time.Timer
}

// NewSessionService constructs the session/vault controller. The session
// starts locked; autoLockTimeout <= 0 disables the inactivity timer.
func NewSessionService(
	codec crypto.EnvelopeService,
	orchestrator SyncOrchestrator,
	local store.VaultStore,
	remote adapter.RemoteStore,
	autoLockTimeout time.Duration,
	log *logger.Logger,
) SessionService {
	return &sessionService{
		codec:           codec,
		orchestrator:    orchestrator,
		local:           local,
		remote:          remote,
		autoLockTimeout: autoLockTimeout,
		logger:          log,
		state:           StateLocked,
	}
}

func (s *sessionService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Unlock implements [SessionService].
func (s *sessionService) Unlock(ctx context.Context, password string) (UnlockResult, error) {
	if err := validators.Password(password); err != nil {
		return UnlockResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLocked {
		return UnlockResult{}, ErrNotLocked
	}
	s.state = StateUnlocking

	env, err := s.orchestrator.Load(ctx)
	if errors.Is(err, store.ErrNotFound) {
		// First run: nothing exists to verify against, so the supplied
		// password becomes the master password and an empty vault is
		// persisted right away.
		return s.firstRunLocked(ctx, password)
	}
	if err != nil {
		s.state = StateLocked
		return UnlockResult{}, fmt.Errorf("load envelope: %w", err)
	}

	plaintext, err := s.codec.Decrypt(env, password)
	if err != nil {
		// Wrong password and corrupted envelope are indistinguishable;
		// either way the session stays locked with no partial state.
		s.state = StateLocked
		return UnlockResult{}, err
	}

	vault := models.NewVault()
	if err = json.Unmarshal([]byte(plaintext), vault); err != nil {
		s.state = StateLocked
		return UnlockResult{}, fmt.Errorf("decode vault: %w", err)
	}
	if vault.Tables == nil {
		vault.Tables = make(map[string]*models.Table)
	}

	s.password = password
	s.vault = vault
	s.state = StateUnlocked
	s.armTimerLocked()

	s.logger.Info().Str("func", "sessionService.Unlock").Msg("session unlocked")
	return UnlockResult{}, nil
}

func (s *sessionService) firstRunLocked(ctx context.Context, password string) (UnlockResult, error) {
	s.vault = models.NewVault()
	s.password = password
	s.state = StateUnlocked

	if err := s.persistLocked(ctx); err != nil {
		s.wipeLocked()
		return UnlockResult{}, fmt.Errorf("persist initial vault: %w", err)
	}
	s.armTimerLocked()

	s.logger.Info().Str("func", "sessionService.Unlock").Msg("first run: created empty vault")
	return UnlockResult{FirstRun: true}, nil
}

// Lock implements [SessionService]. Idempotent; callable from any state.
func (s *sessionService) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wipeLocked()
}

// wipeLocked clears session secrets and disarms the timer. Caller holds mu.
func (s *sessionService) wipeLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.password = ""
	s.vault = nil
	if s.state != StateLocked {
		s.state = StateLocked
		s.logger.Info().Str("func", "sessionService.Lock").Msg("session locked")
	}
}

// Touch implements [SessionService].
func (s *sessionService) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateUnlocked && s.timer != nil {
		s.timer.Reset(s.autoLockTimeout)
	}
}

// armTimerLocked starts the inactivity timer. Caller holds mu.
func (s *sessionService) armTimerLocked() {
	if s.autoLockTimeout <= 0 {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.autoLockTimeout, s.Lock)
}

// ChangePassword implements [SessionService]. The old password is
// checked against the envelope on disk, not the in-memory session
// password, to guard against the two having drifted. On success the
// session is forcibly locked: the controller never keeps running with
// mismatched in-memory and persisted passwords.
func (s *sessionService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if err := validators.Password(newPassword); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	env, err := s.local.LoadEnvelope(ctx)
	if err != nil {
		return fmt.Errorf("load persisted envelope: %w", err)
	}

	plaintext, err := s.codec.Decrypt(env, oldPassword)
	if err != nil {
		return err
	}

	newEnv, err := s.codec.Encrypt(plaintext, newPassword)
	if err != nil {
		return fmt.Errorf("re-encrypt vault: %w", err)
	}

	if err = s.orchestrator.Save(ctx, newEnv); err != nil {
		return fmt.Errorf("persist re-encrypted vault: %w", err)
	}

	s.wipeLocked()
	s.logger.Info().Str("func", "sessionService.ChangePassword").Msg("master password changed, session locked")
	return nil
}

// persistLocked serializes the whole vault, encrypts it under the
// session password and saves it through the orchestrator. Caller holds
// mu and has verified the session is unlocked.
func (s *sessionService) persistLocked(ctx context.Context) error {
	payload, err := json.Marshal(s.vault)
	if err != nil {
		return fmt.Errorf("encode vault: %w", err)
	}

	env, err := s.codec.Encrypt(string(payload), s.password)
	if err != nil {
		return fmt.Errorf("encrypt vault: %w", err)
	}

	return s.orchestrator.Save(ctx, env)
}

// mutate runs fn against the unlocked vault and persists the result.
// Validation failures inside fn abort before any in-memory change.
func (s *sessionService) mutate(ctx context.Context, fn func(v *models.Vault) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUnlocked {
		return ErrLocked
	}
	if err := fn(s.vault); err != nil {
		return err
	}
	return s.persistLocked(ctx)
}

// read runs fn against the unlocked vault without persisting.
func (s *sessionService) read(fn func(v *models.Vault) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUnlocked {
		return ErrLocked
	}
	return fn(s.vault)
}
