package validkit

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// FieldErrors maps field paths to failure messages.
// It's based on url.Values to leverage built-in string slice handling.
type FieldErrors url.Values

// Error implements the error interface.
// Returns a human-readable error message summarizing validation failures.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	var parts []string
	for field, messages := range e {
		if len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}

	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

// NewFieldErrors creates an empty FieldErrors value.
func NewFieldErrors() FieldErrors {
	return make(FieldErrors)
}

// Add adds an error message for a field path.
func (e FieldErrors) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first error message for a field path.
func (e FieldErrors) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has checks if a field path has any errors.
func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty returns true if there are no collected errors.
func (e FieldErrors) IsEmpty() bool {
	return len(e) == 0
}

// CollectReporter is a Reporter that records every invalid field into a
// FieldErrors value, giving callers a readable failure summary without
// walking the status tree. Safe for use across concurrent traversals.
type CollectReporter struct {
	mu   sync.Mutex
	errs FieldErrors
}

// NewCollectReporter creates an empty collector.
func NewCollectReporter() *CollectReporter {
	return &CollectReporter{errs: make(FieldErrors)}
}

func (r *CollectReporter) ReportValid(_, _, _ string) {}

func (r *CollectReporter) ReportInvalid(recordType, fieldPath, checkType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs.Add(fieldPath, fmt.Sprintf("failed %s check in %s", checkType, recordType))
}

// Errors returns a copy of the collected failures.
func (r *CollectReporter) Errors() FieldErrors {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(FieldErrors, len(r.errs))
	for field, messages := range r.errs {
		out[field] = append([]string(nil), messages...)
	}
	return out
}
