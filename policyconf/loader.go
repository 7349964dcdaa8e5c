package policyconf

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/validkit"
)

// ParsePolicy maps a config token to a policy. Accepted tokens are
// "default", "fail_fast" (or "failfast") and "silent", case-insensitive.
func ParsePolicy(name string) (validkit.Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return validkit.PolicyDefault, nil
	case "fail_fast", "failfast":
		return validkit.PolicyFailFast, nil
	case "silent":
		return validkit.PolicySilent, nil
	default:
		return validkit.PolicyDefault, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// LoadFile reads a YAML mapping of field paths to policy tokens.
func LoadFile(path string) (validkit.PathConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tokens map[string]string
	if err := yaml.Unmarshal(raw, &tokens); err != nil {
		return nil, errors.Join(ErrParsingFile, err)
	}

	cfg := make(validkit.PathConfig, len(tokens))
	for fieldPath, token := range tokens {
		policy, err := ParsePolicy(token)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q", err, fieldPath)
		}
		cfg[fieldPath] = policy
	}
	return cfg, nil
}

type envConfig struct {
	File     string   `env:"VALIDATION_POLICY_FILE"`
	FailFast []string `env:"VALIDATION_FAIL_FAST_FIELDS" envSeparator:","`
	Silent   []string `env:"VALIDATION_SILENT_FIELDS" envSeparator:","`
}

var defaultEnvLoaded sync.Once

// LoadEnv builds a policy table from environment variables, optionally
// layered on top of the YAML file named by VALIDATION_POLICY_FILE.
// Environment entries win over file entries for the same path.
func LoadEnv() (validkit.PathConfig, error) {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return nil, errors.Join(ErrParsingEnv, err)
	}

	cfg := validkit.PathConfig{}
	if ec.File != "" {
		loaded, err := LoadFile(ec.File)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	for _, fieldPath := range ec.FailFast {
		if fieldPath = strings.TrimSpace(fieldPath); fieldPath != "" {
			cfg[fieldPath] = validkit.PolicyFailFast
		}
	}
	for _, fieldPath := range ec.Silent {
		if fieldPath = strings.TrimSpace(fieldPath); fieldPath != "" {
			cfg[fieldPath] = validkit.PolicySilent
		}
	}
	return cfg, nil
}
