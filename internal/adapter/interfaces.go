// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kotenko

// Package adapter provides the transport layer for mirroring the
// encrypted envelope to a remote file store.
//
// The primary abstraction is [RemoteStore], which decouples the sync
// orchestrator from the wire protocol. The package ships a client for a
// GitHub-contents-style API: a single canonical file read via GET
// (base64 content plus a revision marker) and written via PUT carrying
// the prior revision as an optimistic-concurrency token.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
// The adapter never sees plaintext: envelopes are opaque to it.
package adapter

import (
	"context"

	"github.com/dkotenko/claviger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore pushes and pulls the envelope to the single remote file
// location. Pure transport, no crypto.
type RemoteStore interface {
	// SetCredentials stores the credential tuple used by all subsequent
	// Push and Pull calls.
	SetCredentials(creds models.SyncCredentials)

	// Credentials returns the tuple currently stored in the adapter.
	Credentials() models.SyncCredentials

	// Push uploads the envelope as the canonical remote file. It fetches
	// the current remote revision first and supplies it on update, so
	// two racing devices never fork the file — the last writer still
	// wins. Returns [ErrNotConfigured] when no credentials are set.
	Push(ctx context.Context, env models.Envelope) error

	// Pull downloads and decodes the remote file. Returns [ErrNotFound]
	// when the file does not exist yet — a valid "no remote data" state,
	// not an error condition for callers.
	Pull(ctx context.Context) (models.Envelope, error)

	// TestConnection validates that creds can reach the target
	// repository, without touching stored data or the credentials held
	// by the adapter.
	TestConnection(ctx context.Context, creds models.SyncCredentials) error
}
