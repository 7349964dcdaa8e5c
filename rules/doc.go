// Package rules provides ready-made leaf validators for common value shapes.
//
// The package bridges validkit's capability model with the
// go-playground/validator rule language, so existing tag expressions can be
// reused as leaf checks without writing predicates by hand:
//
//	email := rules.Tag[string]("email_address", "required,email")
//	zip := rules.Tag[string]("zip_code", "len=5,numeric")
//
// A single shared rule engine is initialized lazily and reused by every
// validator built here; it is safe for concurrent use.
//
// Convenience constructors cover the most frequent cases:
//
//	name := rules.NonEmpty("person_name")
//	id := rules.UUID("account_id")
package rules
