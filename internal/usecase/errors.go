package usecase

import "errors"

// Error kinds handlers test with errors.Is. Validation errors are
// caller-fixable and carry detail; the infrastructure kinds are surfaced to
// the caller as opaque failures, with detail kept in server-side logs.
var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrInvalidCategory = errors.New("invalid search category")

	// ErrSubmission covers any store failure during a watchlist submission;
	// the whole transaction has been rolled back when it is returned.
	ErrSubmission = errors.New("submission failed")

	// ErrQueryExecution covers store failures on the read-only paths.
	ErrQueryExecution = errors.New("query execution failed")
)
