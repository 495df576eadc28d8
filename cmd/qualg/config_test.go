package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qualg/povm"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// TestLoadConfig_Defaults returns the defaults without a path.
func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

// TestLoadConfig_File overlays the YAML on the defaults.
func TestLoadConfig_File(t *testing.T) {
	path := writeFile(t, "qualg.yaml", `
max_a: 2
workers: 3
subset: greater
visibility: 0.5
log:
  level: debug
  pretty: true
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.MaxA)
	assert.Equal(t, 1, cfg.MaxB)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "greater", cfg.Subset)
	assert.InDelta(t, 0.5, cfg.Visibility, 0)
	assert.Equal(t, LogConfig{Level: "debug", Pretty: true}, cfg.Log)

	sub, err := parseSubset(cfg.Subset)
	require.NoError(t, err)
	assert.Equal(t, povm.Greater, sub)
}

// TestLoadConfig_Invalid rejects out-of-range values and bad YAML.
func TestLoadConfig_Invalid(t *testing.T) {
	for name, body := range map[string]string{
		"max_a":      "max_a: -1",
		"max_b":      "max_b: 10",
		"workers":    "workers: -2",
		"visibility": "visibility: 1.5",
		"subset":     "subset: most",
	} {
		_, err := loadConfig(writeFile(t, name+".yaml", body))
		assert.ErrorIs(t, err, errBadConfig, name)
	}

	_, err := loadConfig(writeFile(t, "broken.yaml", "max_a: [1"))
	assert.Error(t, err)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
