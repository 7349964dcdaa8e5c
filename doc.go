// Package validkit provides a type-safe validation engine for nested,
// statically-typed records in Go.
//
// ValidKit composes small per-type validators into validators for composite
// records, slices, optionals and closed sets of variants, walks a record's
// fields in declared order, and reports a tri-state outcome (valid, invalid,
// not applicable) for the whole structure and for each field along the way.
// It focuses on explicitness and zero hidden state: validators are immutable
// capabilities built once per type, and metrics sinks and policy tables are
// injected at the call site.
//
// Key Features:
//
//   - Tri-state results with a single dominance rule (invalid over valid
//     over not-applicable)
//   - Generic composition over records, slices, pointers, status-carrying
//     fields and sum types
//   - Per-field policy overrides (fail fast, suppress metrics) keyed by
//     dot-delimited field paths
//   - Pluggable metrics reporters; fire-and-forget by contract
//   - No reflection on the hot path: descriptor tables are fixed at
//     construction time
//
// Basic Usage:
//
//	// Per-type leaf checks
//	street := validkit.NewLeaf("street", func(s string) bool { return s != "" })
//	zip := validkit.NewLeaf("zip_code", func(s string) bool { return len(s) == 5 })
//
//	// A composite record validator
//	type Address struct {
//		Street string
//		Zip    string
//	}
//
//	address := validkit.NewRecord("Address",
//		func(fs []any) Address {
//			return Address{Street: fs[0].(string), Zip: fs[1].(string)}
//		},
//		validkit.NewField("street", func(a Address) string { return a.Street }, street),
//		validkit.NewField("zip", func(a Address) string { return a.Zip }, zip),
//	)
//
//	res, err := address.Validate(Address{Street: "Main St", Zip: "12345"})
//	if err != nil {
//		// fail-fast policy hit, a dynamic check was missing its argument,
//		// or a sum-typed value matched no variant
//	}
//	if res.IsInvalid() {
//		// inspect the rebuilt record via res.MustValue()
//	}
//
// Invalid data is a status value, not an error: only the fail-fast policy,
// a missing dynamic-check argument and an unmatched sum-type variant surface
// as errors.
//
// Nested composition:
//
//	tags := validkit.NewSlice[[]string](validkit.NewLeaf("tag", isTag))
//	owner := validkit.NewOptional(personValidator)
//	shape := validkit.NewVariants[Shape]("Shape",
//		validkit.Variant[Shape](circleValidator),
//		validkit.Variant[Shape](squareValidator),
//	)
//
// Validators carry no per-call state, so any number of traversals may run
// concurrently over the same instances without locking.
//
// Subpackages:
//
//   - rules: reusable leaf validators backed by go-playground/validator tag
//     rules and google/uuid
//   - promreporter: a Prometheus-backed metrics Reporter
//   - policyconf: loading per-field policy tables from YAML files and the
//     environment
package validkit
