package models

import "errors"

// Error taxonomy shared by the repositories and handlers. Every failure a
// repository can surface wraps one of these, so the HTTP layer maps them to
// statuses in a single place.
var (
	// ErrValidation marks bad input shape: empty or oversized message
	// text, malformed ids, a self-follow when disallowed.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicate marks a uniqueness violation on username or email.
	ErrDuplicate = errors.New("already exists")

	// ErrUnauthorized marks a missing session or an attempt to act on
	// another user's resource.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound marks an id with no backing record.
	ErrNotFound = errors.New("not found")
)
