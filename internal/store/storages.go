package store

import (
	"context"
	"fmt"

	"github.com/dkotenko/claviger/internal/config"
	"github.com/dkotenko/claviger/internal/logger"
)

// Storages groups the local persistence layer into a single value that
// can be passed to the service layer.
type Storages struct {
	// Vault is the SQLite-backed key-value store holding the envelope,
	// the pending-sync flag, the sync credentials and the device id.
	Vault VaultStore
}

// NewStorages initialises local persistence: opens the SQLite database
// from cfg.DSN, runs pending schema migrations and wires the vault
// store.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating local storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Vault: NewVaultStore(db, log),
	}, nil
}
