package service

import "errors"

var (
	// ErrLocked is returned by vault operations attempted while the
	// session is not unlocked.
	ErrLocked = errors.New("vault is locked")

	// ErrNotLocked is returned by Unlock when a session is already
	// unlocked or an unlock is in flight.
	ErrNotLocked = errors.New("session is not locked")

	// ErrIncompleteCredentials is returned when a sync credential tuple
	// is missing required fields.
	ErrIncompleteCredentials = errors.New("incomplete sync credentials")
)
