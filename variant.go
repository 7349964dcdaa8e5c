package validkit

import "fmt"

// VariantCase binds one concrete variant of a closed sum type to its
// validator. Construct with Variant.
type VariantCase[S any] struct {
	try func(S, string, string, Config, Reporter) (Result[S], bool, error)
}

// Variant adapts a validator for the concrete type V into a case of the sum
// type S. A case matches when the value's dynamic type is V; a non-matching
// value moves dispatch to the next case without error. An error from a
// matched variant's validator propagates: only type mismatches are treated
// as failed probes.
func Variant[S, V any](v Validator[V]) VariantCase[S] {
	return VariantCase[S]{
		try: func(value S, path, rootType string, cfg Config, rep Reporter) (Result[S], bool, error) {
			concrete, ok := any(value).(V)
			if !ok {
				return Result[S]{}, false, nil
			}
			res, err := v.ValidateRecord(concrete, path, rootType, cfg, rep)
			if err != nil {
				return Result[S]{}, true, err
			}
			return Map(res, func(cv V) S { return any(cv).(S) }), true, nil
		},
	}
}

// VariantValidator dispatches a sum-typed value to the validator of its
// active variant. Cases are tried in declaration order and the first match
// wins.
type VariantValidator[S any] struct {
	typeName string
	cases    []VariantCase[S]
}

// NewVariants builds a dispatcher for the named sum type. A value matching
// none of the cases fails with ErrNoMatchingVariant.
func NewVariants[S any](typeName string, cases ...VariantCase[S]) *VariantValidator[S] {
	return &VariantValidator[S]{typeName: typeName, cases: cases}
}

func (d *VariantValidator[S]) Validate(value S) (Result[S], error) {
	return d.ValidateRecord(value, "", "", nil, nil)
}

func (d *VariantValidator[S]) ValidateRecord(value S, path, rootType string, cfg Config, rep Reporter) (Result[S], error) {
	for _, c := range d.cases {
		res, matched, err := c.try(value, path, rootType, cfg, rep)
		if err != nil {
			return Result[S]{}, err
		}
		if matched {
			return res, nil
		}
	}
	return Result[S]{}, fmt.Errorf("%w: %s", ErrNoMatchingVariant, d.typeName)
}

// ShouldValidate is always true: dispatch itself is never skippable, even
// when the chosen variant's validator is a no-op.
func (d *VariantValidator[S]) ShouldValidate() bool { return true }

func (d *VariantValidator[S]) TypeName() string { return d.typeName }
