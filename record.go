package validkit

// Field describes one field of a composite record: its label, how to read it
// from the record, and the validator for its type. Build with NewField; the
// descriptor table for a record type is fixed at construction time and never
// recomputed per call.
type Field[R any] struct {
	name     string
	skip     bool
	typeName string
	raw      func(R) any
	check    func(R, string, string, Config, Reporter) (any, Tag, error)
}

// NewField binds an accessor and a validator into a field descriptor for
// records of type R.
func NewField[R, F any](name string, get func(R) F, v Validator[F]) Field[R] {
	return Field[R]{
		name:     name,
		skip:     !v.ShouldValidate(),
		typeName: v.TypeName(),
		raw:      func(r R) any { return get(r) },
		check: func(r R, path, rootType string, cfg Config, rep Reporter) (any, Tag, error) {
			res, err := v.ValidateRecord(get(r), path, rootType, cfg, rep)
			if err != nil {
				return nil, TagNotApplicable, err
			}
			return res.MustValue(), res.Tag(), nil
		},
	}
}

// RecordValidator walks the fields of a composite record in declared order,
// validates each one, aggregates their statuses by dominance and rebuilds
// the record. It is the entry point re-entered at every nesting level.
type RecordValidator[R any] struct {
	typeName string
	build    func([]any) R
	fields   []Field[R]
	active   bool
}

// NewRecord builds a validator for the composite type named typeName. The
// build function receives the validated field values in declared order and
// must reconstruct the record; it is called even when some fields are
// invalid, so the rebuilt record stays materializable for reporting and
// logging.
func NewRecord[R any](typeName string, build func([]any) R, fields ...Field[R]) *RecordValidator[R] {
	active := false
	for _, f := range fields {
		if !f.skip {
			active = true
			break
		}
	}
	return &RecordValidator[R]{typeName: typeName, build: build, fields: fields, active: active}
}

func (rv *RecordValidator[R]) Validate(value R) (Result[R], error) {
	return rv.ValidateRecord(value, "", "", nil, nil)
}

func (rv *RecordValidator[R]) ValidateRecord(value R, path, rootType string, cfg Config, rep Reporter) (Result[R], error) {
	if rootType == "" {
		rootType = rv.typeName
	}

	var sawValid, sawInvalid bool
	buf := make([]any, len(rv.fields))

	for i, f := range rv.fields {
		// Exempt fields are copied through untouched: no path string is
		// built, no policy is looked up, no metric is emitted.
		if f.skip {
			buf[i] = f.raw(value)
			continue
		}

		fieldPath := f.name
		if path != "" {
			fieldPath = path + "." + f.name
		}
		policy := PolicyDefault
		if cfg != nil {
			policy = cfg.PolicyFor(fieldPath)
		}

		fv, tag, err := f.check(value, fieldPath, rootType, cfg, rep)
		if err != nil {
			return Result[R]{}, err
		}

		switch tag {
		case TagValid:
			sawValid = true
			if policy != PolicySilent && f.typeName != "" && rep != nil {
				rep.ReportValid(rootType, fieldPath, f.typeName)
			}
		case TagInvalid:
			sawInvalid = true
			if policy == PolicyFailFast {
				return Result[R]{}, &InvalidFieldError{Path: fieldPath, Value: fv}
			}
			if policy != PolicySilent && f.typeName != "" && rep != nil {
				rep.ReportInvalid(rootType, fieldPath, f.typeName)
			}
		}

		// The value lands in the buffer regardless of its validity: the
		// rebuilt record must be materializable even when invalid.
		buf[i] = fv
	}

	rebuilt := rv.build(buf)
	switch {
	case sawInvalid:
		return Invalid(rebuilt), nil
	case sawValid:
		return Valid(rebuilt), nil
	default:
		return NotApplicable(rebuilt), nil
	}
}

// ShouldValidate is false only when every field of the record is exempt.
func (rv *RecordValidator[R]) ShouldValidate() bool { return rv.active }

func (rv *RecordValidator[R]) TypeName() string { return rv.typeName }
