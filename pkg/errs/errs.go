// Package errs defines the error categories shared between services and
// handlers. Services wrap the cause with %w so handlers can classify with
// errors.Is while the original error stays in the logs.
package errs

import "errors"

var (
	// ErrValidation marks caller-correctable input problems.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a missing row, including rows the caller doesn't own.
	ErrNotFound = errors.New("not found")

	// ErrUpstream marks a failed or unusable completion-service response.
	ErrUpstream = errors.New("generation failed")
)
