package app

import "errors"

var (
	// ErrNoRoleSelected means the user has no target role. It is a user
	// correctable condition, not an engine fault.
	ErrNoRoleSelected = errors.New("no role selected")

	// ErrUnknownSkill marks a skill reference missing from the catalog.
	// Ingest skips such skills instead of failing the attempt.
	ErrUnknownSkill = errors.New("unknown skill reference")

	// ErrInvalidAttempt wraps structural validation failures of an attempt.
	ErrInvalidAttempt = errors.New("invalid attempt")

	// ErrNoDifficultyPolicy is returned for context kinds that have no
	// adaptive difficulty.
	ErrNoDifficultyPolicy = errors.New("no difficulty policy for context kind")

	// ErrPersistence wraps store read/write failures. Callers may retry.
	ErrPersistence = errors.New("persistence failure")
)

// IsRetryable reports whether err is a persistence failure the caller may
// retry. Nothing in the engine retries on its own.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrPersistence)
}
