package driver

import "errors"

// Backend-neutral error kinds. Drivers wrap the backend cause with
// fmt.Errorf("%w: %w", kind, cause) so errors.Is matches the kind and
// errors.Unwrap still reaches the native error for logging.
var (
	// ErrInvalidKey is returned when a key violates the key invariants.
	// The backend is never touched in that case.
	ErrInvalidKey = errors.New("invalid object key")

	// ErrNotFound is returned when the key does not exist.
	ErrNotFound = errors.New("object not found")

	// ErrUnavailable covers connectivity, authentication and throttling
	// failures: the backend cannot be used right now.
	ErrUnavailable = errors.New("backend unavailable")

	// ErrWriteFailed covers backend-specific write errors such as a full
	// disk, denied permissions or a missing bucket.
	ErrWriteFailed = errors.New("write failed")

	// ErrReadFailed covers backend-specific read errors.
	ErrReadFailed = errors.New("read failed")

	// ErrInternal is the unclassified remainder.
	ErrInternal = errors.New("internal storage error")
)
