package store

import "errors"

// Sentinel errors returned by [VaultStore] methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a requested slot (envelope,
	// credentials) has never been written. For the envelope this is the
	// first-run signal, a valid state rather than a failure.
	ErrNotFound = errors.New("not found in local store")

	// ErrExecutingQuery wraps SQL-level failures that prevented a read
	// or write from completing.
	ErrExecutingQuery = errors.New("error executing sql query")
)
