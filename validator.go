package validkit

import "fmt"

// Validator is the capability to validate values of type T. Implementations
// are immutable after construction and safe for concurrent use; all per-call
// bookkeeping stays local to the call.
type Validator[T any] interface {
	// Validate checks a single value outside of any record context.
	Validate(value T) (Result[T], error)

	// ValidateRecord re-enters the traversal at a nesting level: path is the
	// dot-delimited position of the value within the outermost record,
	// rootType names the outermost record type for metrics attribution, and
	// cfg and rep are shared by every level of the traversal. Leaf
	// implementations ignore the traversal context. Both cfg and rep may be
	// nil.
	ValidateRecord(value T, path, rootType string, cfg Config, rep Reporter) (Result[T], error)

	// ShouldValidate reports whether this validator performs any work.
	// Record validators skip path construction, policy lookup and metrics
	// entirely for fields whose validator returns false.
	ShouldValidate() bool

	// TypeName names the validation type for metrics attribution. Slice
	// validators report their element's type name. An empty name disables
	// metrics for values checked by this validator.
	TypeName() string
}

// LeafValidator validates a value with no internal structure using a
// self-contained predicate.
type LeafValidator[T any] struct {
	typeName string
	check    func(T) bool
}

// NewLeaf returns a validator that applies check to each value: Valid when
// the predicate holds, Invalid otherwise.
func NewLeaf[T any](typeName string, check func(T) bool) *LeafValidator[T] {
	return &LeafValidator[T]{typeName: typeName, check: check}
}

func (l *LeafValidator[T]) Validate(value T) (Result[T], error) {
	if l.check(value) {
		return Valid(value), nil
	}
	return Invalid(value), nil
}

func (l *LeafValidator[T]) ValidateRecord(value T, _, _ string, _ Config, _ Reporter) (Result[T], error) {
	return l.Validate(value)
}

func (l *LeafValidator[T]) ShouldValidate() bool { return true }

func (l *LeafValidator[T]) TypeName() string { return l.typeName }

// DynamicLeafValidator validates values whose check needs an externally
// supplied argument carried by the value itself. A value without the
// argument is an error, never silently skipped.
type DynamicLeafValidator[T any] struct {
	typeName string
	arg      func(T) (string, bool)
	check    func(T, string) bool
}

// NewDynamicLeaf returns a validator that extracts the external argument via
// arg and applies check with it. An absent or empty argument fails with
// ErrMissingArgument.
func NewDynamicLeaf[T any](typeName string, arg func(T) (string, bool), check func(T, string) bool) *DynamicLeafValidator[T] {
	return &DynamicLeafValidator[T]{typeName: typeName, arg: arg, check: check}
}

func (d *DynamicLeafValidator[T]) Validate(value T) (Result[T], error) {
	a, ok := d.arg(value)
	if !ok || a == "" {
		return Result[T]{}, fmt.Errorf("%w: %s", ErrMissingArgument, d.typeName)
	}
	if d.check(value, a) {
		return Valid(value), nil
	}
	return Invalid(value), nil
}

func (d *DynamicLeafValidator[T]) ValidateRecord(value T, _, _ string, _ Config, _ Reporter) (Result[T], error) {
	return d.Validate(value)
}

func (d *DynamicLeafValidator[T]) ShouldValidate() bool { return true }

func (d *DynamicLeafValidator[T]) TypeName() string { return d.typeName }

// IgnoreValidator marks a type as exempt from validation. Record validators
// detect it through ShouldValidate and copy the raw field value through
// without building a path, consulting policy or emitting metrics.
type IgnoreValidator[T any] struct {
	typeName string
}

// NewIgnore returns a no-op validator for the named type.
func NewIgnore[T any](typeName string) *IgnoreValidator[T] {
	return &IgnoreValidator[T]{typeName: typeName}
}

func (i *IgnoreValidator[T]) Validate(value T) (Result[T], error) {
	return NotApplicable(value), nil
}

func (i *IgnoreValidator[T]) ValidateRecord(value T, _, _ string, _ Config, _ Reporter) (Result[T], error) {
	return NotApplicable(value), nil
}

func (i *IgnoreValidator[T]) ShouldValidate() bool { return false }

func (i *IgnoreValidator[T]) TypeName() string { return i.typeName }
