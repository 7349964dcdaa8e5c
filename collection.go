package validkit

// SliceValidator validates every element of a slice in order with the same
// path and config as the slice field itself, and rebuilds a slice of the
// same kind preserving length and order.
type SliceValidator[S ~[]E, E any] struct {
	elem Validator[E]
}

// NewSlice composes an element validator over a homogeneous sequence. The
// result is Invalid when at least one element is Invalid, Valid otherwise.
func NewSlice[S ~[]E, E any](elem Validator[E]) *SliceValidator[S, E] {
	return &SliceValidator[S, E]{elem: elem}
}

func (s *SliceValidator[S, E]) Validate(value S) (Result[S], error) {
	return s.ValidateRecord(value, "", "", nil, nil)
}

func (s *SliceValidator[S, E]) ValidateRecord(value S, path, rootType string, cfg Config, rep Reporter) (Result[S], error) {
	if len(value) == 0 {
		return Valid(value), nil
	}

	rebuilt := make(S, len(value))
	invalid := false
	for i, el := range value {
		res, err := s.elem.ValidateRecord(el, path, rootType, cfg, rep)
		if err != nil {
			return Result[S]{}, err
		}
		if res.IsInvalid() {
			invalid = true
		}
		rebuilt[i] = res.MustValue()
	}

	if invalid {
		return Invalid(rebuilt), nil
	}
	return Valid(rebuilt), nil
}

// ShouldValidate mirrors the element validator, so a slice of an exempt type
// is itself a no-op wrapper.
func (s *SliceValidator[S, E]) ShouldValidate() bool { return s.elem.ShouldValidate() }

// TypeName reports the element type's name: metrics for a slice field are
// attributed to the element check, not to the slice.
func (s *SliceValidator[S, E]) TypeName() string { return s.elem.TypeName() }

// OptionalValidator composes a validator over a pointer field. Absence is
// never invalid.
type OptionalValidator[T any] struct {
	inner Validator[T]
}

// NewOptional returns a validator for *T: nil is Valid unconditionally, a
// present value is validated by inner and rewrapped preserving its tag.
func NewOptional[T any](inner Validator[T]) *OptionalValidator[T] {
	return &OptionalValidator[T]{inner: inner}
}

func (o *OptionalValidator[T]) Validate(value *T) (Result[*T], error) {
	return o.ValidateRecord(value, "", "", nil, nil)
}

func (o *OptionalValidator[T]) ValidateRecord(value *T, path, rootType string, cfg Config, rep Reporter) (Result[*T], error) {
	if value == nil {
		return Valid[*T](nil), nil
	}
	res, err := o.inner.ValidateRecord(*value, path, rootType, cfg, rep)
	if err != nil {
		return Result[*T]{}, err
	}
	return Map(res, func(v T) *T { return &v }), nil
}

func (o *OptionalValidator[T]) ShouldValidate() bool { return o.inner.ShouldValidate() }

func (o *OptionalValidator[T]) TypeName() string { return o.inner.TypeName() }
