package service

import (
	"context"

	"github.com/dkotenko/claviger/internal/adapter"
	"github.com/dkotenko/claviger/internal/config"
	"github.com/dkotenko/claviger/internal/crypto"
	"github.com/dkotenko/claviger/internal/logger"
	"github.com/dkotenko/claviger/internal/store"
)

type Services struct {
	Sync    SyncOrchestrator
	Session SessionService
}

func NewServices(storages store.Storages, remote adapter.RemoteStore, cfg *config.Config, log *logger.Logger) *Services {
	// Arm the transport with the persisted credential tuple, if sync was
	// ever configured. A missing tuple leaves the remote unconfigured and
	// the orchestrator degrades to local-only.
	if creds, err := storages.Vault.LoadCredentials(context.Background()); err == nil {
		remote.SetCredentials(creds)
	}

	codec := crypto.NewEnvelopeService()
	orchestrator := NewSyncOrchestrator(storages.Vault, remote, log)
	return &Services{
		Sync:    orchestrator,
		Session: NewSessionService(codec, orchestrator, storages.Vault, remote, cfg.App.AutoLockTimeout, log),
	}
}
