package adapter

import "errors"

// Sentinel errors mapped from remote responses. Callers match with
// [errors.Is].
var (
	// ErrNotConfigured is returned when Push or Pull is attempted before
	// any credentials were set.
	ErrNotConfigured = errors.New("remote store not configured")

	// ErrNotFound is returned when the remote file (or repository) does
	// not exist. For Pull this is the valid "no remote data yet" state.
	ErrNotFound = errors.New("remote file not found")

	// ErrUnauthorized is returned when the remote rejects the credential.
	ErrUnauthorized = errors.New("remote unauthorized")

	// ErrConflict is returned when the supplied revision marker is stale:
	// another device wrote the file between our fetch and our update.
	ErrConflict = errors.New("remote revision conflict")
)
