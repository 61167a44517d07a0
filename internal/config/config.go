// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

// Package config assembles the claviger configuration by merging three
// sources in priority order: environment variables, command-line flags
// and an optional JSON file. Merging is done with mergo; defaults are
// applied last, so any source can override them.
package config

import (
	"fmt"
	"time"
)

// Config is the top-level configuration container for the claviger
// client.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// App holds application-level settings such as the auto-lock
	// threshold.
	App App `envPrefix:"CLAVIGER_"`

	// Storage holds local persistence settings.
	Storage Storage `envPrefix:"CLAVIGER_STORAGE_"`

	// Remote holds the remote file store endpoint settings. The
	// credential tuple itself (owner/repo/token) lives in the local
	// store, managed from the settings screen; only transport-level
	// knobs are configured here.
	Remote Remote `envPrefix:"CLAVIGER_REMOTE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	JSONFilePath string `env:"CLAVIGER_CONFIG"`
}

// App holds application-level settings.
type App struct {
	// AutoLockTimeout is the inactivity window after which an unlocked
	// session locks itself. Env: CLAVIGER_AUTO_LOCK_TIMEOUT
	AutoLockTimeout time.Duration `env:"AUTO_LOCK_TIMEOUT"`

	// FlushInterval is how often the background worker retries a pending
	// remote push. Env: CLAVIGER_FLUSH_INTERVAL
	FlushInterval time.Duration `env:"FLUSH_INTERVAL"`
}

// Storage holds local persistence settings.
type Storage struct {
	// DSN is the SQLite database file path.
	// Env: CLAVIGER_STORAGE_DSN
	DSN string `env:"DSN"`
}

// Remote holds transport settings for the remote file store.
type Remote struct {
	// Endpoint is the base URL of the contents API.
	// Env: CLAVIGER_REMOTE_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// RequestTimeout bounds every remote call so a hung connection never
	// delays the fall-back-to-local path.
	// Env: CLAVIGER_REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Defaults applied after all sources are merged.
const (
	DefaultAutoLockTimeout = 5 * time.Minute
	DefaultFlushInterval   = time.Minute
	DefaultRequestTimeout  = 15 * time.Second
	DefaultEndpoint        = "https://api.github.com"
	DefaultDSN             = "claviger.db"
)

// GetConfig builds the final configuration: env, then flags, then the
// optional JSON file, merged in that priority order, with defaults
// filling whatever remains unset.
func GetConfig() (*Config, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (cfg *Config) applyDefaults() {
	if cfg.App.AutoLockTimeout == 0 {
		cfg.App.AutoLockTimeout = DefaultAutoLockTimeout
	}
	if cfg.App.FlushInterval == 0 {
		cfg.App.FlushInterval = DefaultFlushInterval
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = DefaultDSN
	}
	if cfg.Remote.Endpoint == "" {
		cfg.Remote.Endpoint = DefaultEndpoint
	}
	if cfg.Remote.RequestTimeout == 0 {
		cfg.Remote.RequestTimeout = DefaultRequestTimeout
	}
}

func (cfg *Config) validate() error {
	if cfg.App.AutoLockTimeout < 0 || cfg.App.FlushInterval <= 0 {
		return ErrInvalidAppConfigs
	}
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Remote.Endpoint == "" || cfg.Remote.RequestTimeout <= 0 {
		return ErrInvalidRemoteConfigs
	}
	return nil
}
