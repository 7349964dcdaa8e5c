package validkit

// CheckedValidator handles fields whose declared type already carries a
// validation status, so a record can hold pre-computed or deferred outcomes
// without a dedicated capability for the wrapped shape. It re-validates the
// carried value and nests the fresh result one level deeper; the outer tag
// mirrors the inner one so record aggregation sees through the wrapping.
type CheckedValidator[T any] struct {
	inner Validator[T]
}

// NewChecked composes a validator over Result[T] fields.
func NewChecked[T any](inner Validator[T]) *CheckedValidator[T] {
	return &CheckedValidator[T]{inner: inner}
}

func (c *CheckedValidator[T]) Validate(value Result[T]) (Result[Result[T]], error) {
	return c.ValidateRecord(value, "", "", nil, nil)
}

func (c *CheckedValidator[T]) ValidateRecord(value Result[T], path, rootType string, cfg Config, rep Reporter) (Result[Result[T]], error) {
	res, err := c.inner.ValidateRecord(value.MustValue(), path, rootType, cfg, rep)
	if err != nil {
		return Result[Result[T]]{}, err
	}
	return Result[Result[T]]{tag: res.tag, value: res}, nil
}

func (c *CheckedValidator[T]) ShouldValidate() bool { return c.inner.ShouldValidate() }

func (c *CheckedValidator[T]) TypeName() string { return c.inner.TypeName() }

// CheckedOptionalValidator is the optional form of CheckedValidator for
// fields of type Result[*T]: an absent carried value is Valid, a present one
// is delegated to the inner validator and rewrapped.
type CheckedOptionalValidator[T any] struct {
	inner Validator[T]
}

// NewCheckedOptional composes a validator over Result[*T] fields.
func NewCheckedOptional[T any](inner Validator[T]) *CheckedOptionalValidator[T] {
	return &CheckedOptionalValidator[T]{inner: inner}
}

func (c *CheckedOptionalValidator[T]) Validate(value Result[*T]) (Result[Result[*T]], error) {
	return c.ValidateRecord(value, "", "", nil, nil)
}

func (c *CheckedOptionalValidator[T]) ValidateRecord(value Result[*T], path, rootType string, cfg Config, rep Reporter) (Result[Result[*T]], error) {
	p := value.MustValue()
	if p == nil {
		inner := Valid[*T](nil)
		return Result[Result[*T]]{tag: inner.tag, value: inner}, nil
	}
	res, err := c.inner.ValidateRecord(*p, path, rootType, cfg, rep)
	if err != nil {
		return Result[Result[*T]]{}, err
	}
	rewrapped := Map(res, func(v T) *T { return &v })
	return Result[Result[*T]]{tag: rewrapped.tag, value: rewrapped}, nil
}

func (c *CheckedOptionalValidator[T]) ShouldValidate() bool { return c.inner.ShouldValidate() }

func (c *CheckedOptionalValidator[T]) TypeName() string { return c.inner.TypeName() }
