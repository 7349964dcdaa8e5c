package validkit

// Tag identifies the outcome of validating a single value. The zero value is
// TagNotApplicable so that an empty Result is never mistaken for a positive
// outcome.
type Tag uint8

const (
	// TagNotApplicable means validation was deliberately skipped for the
	// value's type.
	TagNotApplicable Tag = iota

	// TagValid means the value passed validation.
	TagValid

	// TagInvalid means the value failed validation.
	TagInvalid
)

// String returns a human-readable tag name for logging.
func (t Tag) String() string {
	switch t {
	case TagValid:
		return "valid"
	case TagInvalid:
		return "invalid"
	default:
		return "not_applicable"
	}
}

// Dominant returns the stronger of two tags: Invalid dominates Valid, which
// dominates NotApplicable. This is the single aggregation rule used wherever
// multiple statuses are combined into one.
func Dominant(a, b Tag) Tag {
	if a > b {
		return a
	}
	return b
}

// Unvalidated wraps a value that has not been validated yet. It holds exactly
// one value and is immutable once constructed.
type Unvalidated[T any] struct {
	value T
}

// NewUnvalidated wraps a raw value for later validation.
func NewUnvalidated[T any](value T) Unvalidated[T] {
	return Unvalidated[T]{value: value}
}

// Value returns the wrapped raw value.
func (u Unvalidated[T]) Value() T { return u.value }

// Result carries a value together with its validation outcome. Valid and
// Invalid carry the (possibly reconstructed) validated value; NotApplicable
// carries the value untouched. A field whose declared type itself carries a
// status is expressed by nesting: see NewChecked, which produces
// Result[Result[T]] values.
type Result[T any] struct {
	tag   Tag
	value T
}

// Valid marks a value as having passed validation.
func Valid[T any](value T) Result[T] {
	return Result[T]{tag: TagValid, value: value}
}

// Invalid marks a value as having failed validation.
func Invalid[T any](value T) Result[T] {
	return Result[T]{tag: TagInvalid, value: value}
}

// NotApplicable marks a value whose type is exempt from validation.
func NotApplicable[T any](value T) Result[T] {
	return Result[T]{tag: TagNotApplicable, value: value}
}

// Tag returns the outcome tag.
func (r Result[T]) Tag() Tag { return r.tag }

// IsValid reports whether the value passed validation.
func (r Result[T]) IsValid() bool { return r.tag == TagValid }

// IsInvalid reports whether the value failed validation.
func (r Result[T]) IsInvalid() bool { return r.tag == TagInvalid }

// MustValue returns the carried value regardless of the tag. It is meant for
// callers that have already acted on the tag, such as the record traversal
// storing a field's value into the rebuild buffer; it must not be used to
// discard an Invalid status a caller still cares about.
func (r Result[T]) MustValue() T { return r.value }

// Map applies f to the carried value, preserving the tag.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	return Result[U]{tag: r.tag, value: f(r.value)}
}
