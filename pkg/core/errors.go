package core

import "errors"

// Common errors.
var (
	// ErrStorageUnavailable is returned when the backing store is missing, unreadable,
	// corrupt or already closed. The store should be treated as unusable for the session.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidRecord marks a stored document that lacks required fields.
	// Stores skip such documents during Search and log them.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrMalformedRecord is returned by presenters when a record cannot be rendered faithfully.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrNotWatchable is returned when the store cannot report changes.
	ErrNotWatchable = errors.New("store does not support watching")
)
