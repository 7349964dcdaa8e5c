package validkit

import (
	"errors"
	"fmt"
)

// Failures that surface as errors rather than status values. Everything else
// invalid flows through the status algebra.
var (
	// ErrMissingArgument reports a dynamic leaf validated without its
	// required external argument. This is an integration bug, not bad data.
	ErrMissingArgument = errors.New("missing required validation argument")

	// ErrNoMatchingVariant reports a sum-typed value that matched none of
	// the registered variant validators.
	ErrNoMatchingVariant = errors.New("no matching variant")

	// ErrInvalidData reports a field that failed validation under the
	// fail-fast policy.
	ErrInvalidData = errors.New("invalid data")
)

// InvalidFieldError aborts a traversal under PolicyFailFast. It identifies
// the offending field and carries its value for logging.
type InvalidFieldError struct {
	Path  string
	Value any
}

// Error implements the error interface.
func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid data: field %q rejected value %v", e.Path, e.Value)
}

// Unwrap makes the error match ErrInvalidData via errors.Is.
func (e *InvalidFieldError) Unwrap() error { return ErrInvalidData }
