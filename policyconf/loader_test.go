package policyconf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit"
	"github.com/dmitrymomot/validkit/policyconf"
)

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		token   string
		want    validkit.Policy
		wantErr bool
	}{
		{name: "default", token: "default", want: validkit.PolicyDefault},
		{name: "empty means default", token: "", want: validkit.PolicyDefault},
		{name: "fail_fast", token: "fail_fast", want: validkit.PolicyFailFast},
		{name: "failfast alias", token: "failfast", want: validkit.PolicyFailFast},
		{name: "silent", token: "silent", want: validkit.PolicySilent},
		{name: "case insensitive", token: "FAIL_FAST", want: validkit.PolicyFailFast},
		{name: "whitespace tolerated", token: " silent ", want: validkit.PolicySilent},
		{name: "unknown token", token: "explode", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := policyconf.ParsePolicy(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, policyconf.ErrUnknownPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	cfg, err := policyconf.LoadFile("testdata/policies.yaml")
	require.NoError(t, err)

	assert.Equal(t, validkit.PolicyFailFast, cfg.PolicyFor("user.email"))
	assert.Equal(t, validkit.PolicySilent, cfg.PolicyFor("user.metadata"))
	assert.Equal(t, validkit.PolicyFailFast, cfg.PolicyFor("billing.card.number"))
	assert.Equal(t, validkit.PolicyDefault, cfg.PolicyFor("user.name"))
	assert.Equal(t, validkit.PolicyDefault, cfg.PolicyFor("not.configured"))
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := policyconf.LoadFile("testdata/does-not-exist.yaml")
	require.Error(t, err)
}

func TestLoadFile_BadToken(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user.email: explode\n"), 0o600))

	_, err := policyconf.LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, policyconf.ErrUnknownPolicy)
	assert.Contains(t, err.Error(), "user.email")
}

func TestLoadFile_NotAMapping(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "list.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- a\n- b\n"), 0o600))

	_, err := policyconf.LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, policyconf.ErrParsingFile)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("VALIDATION_POLICY_FILE", "testdata/policies.yaml")
	t.Setenv("VALIDATION_FAIL_FAST_FIELDS", "billing.total, user.age")
	t.Setenv("VALIDATION_SILENT_FIELDS", "user.email")

	cfg, err := policyconf.LoadEnv()
	require.NoError(t, err)

	// File entries load first.
	assert.Equal(t, validkit.PolicySilent, cfg.PolicyFor("user.metadata"))
	// Environment entries layer on top and win on conflict.
	assert.Equal(t, validkit.PolicyFailFast, cfg.PolicyFor("billing.total"))
	assert.Equal(t, validkit.PolicyFailFast, cfg.PolicyFor("user.age"))
	assert.Equal(t, validkit.PolicySilent, cfg.PolicyFor("user.email"))
}

func TestLoadEnv_NoVariables(t *testing.T) {
	t.Setenv("VALIDATION_POLICY_FILE", "")
	t.Setenv("VALIDATION_FAIL_FAST_FIELDS", "")
	t.Setenv("VALIDATION_SILENT_FIELDS", "")

	cfg, err := policyconf.LoadEnv()
	require.NoError(t, err)
	assert.Empty(t, cfg)
	assert.Equal(t, validkit.PolicyDefault, cfg.PolicyFor("anything"))
}
