package engine

import "errors"

// Engine errors are deterministic: they depend only on the inputs, so a
// caller may retry after correcting the request.
var (
	// ErrInvalidPair is returned for a self-comparison or an item that is
	// not part of the session.
	ErrInvalidPair = errors.New("invalid pair")

	// ErrInsufficientItems is returned when fewer than two eligible items
	// are available for pairing.
	ErrInsufficientItems = errors.New("at least two items required")

	// ErrInvalidPolicy is returned for an unknown battle-limit type or a
	// non-positive limit where one is required.
	ErrInvalidPolicy = errors.New("invalid battle limit policy")

	// ErrDuplicateBattle marks a pair that was already completed under a
	// no-repeat policy. Callers normally treat it as a no-op rather than
	// a failure.
	ErrDuplicateBattle = errors.New("pair already battled")

	// ErrPersistenceConflict wraps a storage transaction failure. The
	// battle was not applied; retrying is safe.
	ErrPersistenceConflict = errors.New("persistence conflict")

	// ErrScorePropagation wraps a ScoreSink failure. The battle itself
	// committed before sinks run, so only the extra-scope delta needs
	// retrying; replaying the battle reports a duplicate.
	ErrScorePropagation = errors.New("score propagation failed")
)
