package validkit

// Policy overrides how the traversal treats a single field, keyed by the
// field's dot-delimited path.
type Policy uint8

const (
	// PolicyDefault applies the standard behavior: invalid data becomes a
	// status value and metrics are reported.
	PolicyDefault Policy = iota

	// PolicyFailFast aborts the whole traversal with an InvalidFieldError
	// as soon as the field fails validation. No later field is processed
	// and no partial record is returned.
	PolicyFailFast

	// PolicySilent validates normally but suppresses metrics for the field.
	PolicySilent
)

// String returns the policy's config token.
func (p Policy) String() string {
	switch p {
	case PolicyFailFast:
		return "fail_fast"
	case PolicySilent:
		return "silent"
	default:
		return "default"
	}
}

// Config resolves the policy for a field path. Implementations must be
// immutable: the same Config is shared by every level of a traversal, which
// may run concurrently with others.
type Config interface {
	PolicyFor(path string) Policy
}

// PathConfig is a Config backed by a plain map. Missing paths resolve to
// PolicyDefault, and a nil PathConfig resolves everything to PolicyDefault.
type PathConfig map[string]Policy

func (c PathConfig) PolicyFor(path string) Policy { return c[path] }
