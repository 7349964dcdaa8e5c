package rules

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dmitrymomot/validkit"
)

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

// instance returns the shared rule engine, initialized on first use.
func instance() *validator.Validate {
	engineOnce.Do(func() {
		engine = validator.New()
	})
	return engine
}

// Tag returns a leaf validator that checks values against a
// go-playground/validator rule expression, e.g. "required,email" or
// "len=5,numeric". The rule string is evaluated per value via Var.
func Tag[T any](typeName, rule string) *validkit.LeafValidator[T] {
	return validkit.NewLeaf(typeName, func(value T) bool {
		return instance().Var(value, rule) == nil
	})
}

// NonEmpty treats strings with at least one non-whitespace character as
// valid.
func NonEmpty(typeName string) *validkit.LeafValidator[string] {
	return validkit.NewLeaf(typeName, func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
}

// UUID validates canonical UUID strings.
func UUID(typeName string) *validkit.LeafValidator[string] {
	return validkit.NewLeaf(typeName, func(s string) bool {
		_, err := uuid.Parse(s)
		return err == nil
	})
}

// Email validates e-mail addresses using the shared rule engine.
func Email(typeName string) *validkit.LeafValidator[string] {
	return Tag[string](typeName, "required,email")
}

// Range validates that a numeric value lies within [min, max].
func Range[T int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64 | float32 | float64](typeName string, min, max T) *validkit.LeafValidator[T] {
	return validkit.NewLeaf(typeName, func(v T) bool {
		return v >= min && v <= max
	})
}
