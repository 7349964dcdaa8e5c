package policyconf

import "errors"

// Package-specific errors
var (
	// ErrUnknownPolicy is returned when a policy token is not one of
	// "default", "fail_fast" or "silent"
	ErrUnknownPolicy = errors.New("unknown policy name")

	// ErrParsingFile is returned when the policy file is not a flat YAML
	// mapping of field paths to policy tokens
	ErrParsingFile = errors.New("failed to parse policy file")

	// ErrParsingEnv is returned when environment variables cannot be parsed
	ErrParsingEnv = errors.New("failed to parse environment variables")
)
