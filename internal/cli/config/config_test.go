package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultDialect, cfg.Dialect)
	assert.Equal(t, DefaultBackend, cfg.Backend)
	assert.Equal(t, DefaultZone, cfg.Zone)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "interim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dialect: us\nbackend: civil\n"), 0o644))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "us", cfg.Dialect)
	assert.Equal(t, "civil", cfg.Backend)
	// unset keys keep their defaults
	assert.Equal(t, DefaultFormat, cfg.Format)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "interim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dialect: us\n"), 0o644))

	t.Setenv("INTERIM_DIALECT", "uk")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "uk", cfg.Dialect)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("INTERIM_BACKEND", "civil")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("backend", "", "")
	require.NoError(t, flags.Parse([]string{"--backend", "epoch"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "epoch", cfg.Backend)
}

func TestLoadConfigIgnoresUnchangedFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dialect", "", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	// an unset flag must not blank out the default
	assert.Equal(t, DefaultDialect, cfg.Dialect)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("INTERIM_BACKEND", "sundial")
	_, err := LoadConfig("", nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Dialect: "uk", Backend: "systime"}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{Dialect: "fr", Backend: "systime"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Dialect: "us", Backend: "sundial"}
	assert.Error(t, cfg.Validate())
}
