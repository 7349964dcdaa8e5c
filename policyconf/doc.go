// Package policyconf loads per-field validation policy tables from YAML
// files and environment variables.
//
// A policy file is a flat mapping of dot-delimited field paths to policy
// tokens:
//
//	user.email: fail_fast
//	user.metadata: silent
//	billing.card.number: fail_fast
//
// Load it directly:
//
//	cfg, err := policyconf.LoadFile("policies.yaml")
//	if err != nil {
//		// Handle error
//	}
//
// Or let the environment drive it. LoadEnv reads the optional .env file
// once, then consults:
//
//	VALIDATION_POLICY_FILE       path to a YAML policy file (optional)
//	VALIDATION_FAIL_FAST_FIELDS  comma-separated field paths to fail fast on
//	VALIDATION_SILENT_FIELDS     comma-separated field paths to mute metrics for
//
// Environment entries take precedence over file entries for the same path.
// The returned validkit.PathConfig is a plain immutable-by-convention map;
// build it once at startup and share it across traversals.
package policyconf
