// Package apperr defines the domain error taxonomy. Every failure is a
// value wrapping one of these sentinels, so callers branch with
// errors.Is instead of string matching.
package apperr

import "errors"

var (
	// ErrValidation marks malformed input; the wrapped message carries
	// the human-readable reason.
	ErrValidation = errors.New("validation failed")

	// ErrAuth is returned verbatim for both unknown email and wrong
	// PIN, deliberately not distinguishing cause.
	ErrAuth = errors.New("invalid email or PIN")

	// ErrNotFound marks an operation referencing a missing user, child
	// or task.
	ErrNotFound = errors.New("not found")

	// ErrPersistence marks a failed document save; the in-memory state
	// stays unsaved until the next successful save.
	ErrPersistence = errors.New("persistence failed")
)
