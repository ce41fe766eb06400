package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ModeFull, cfg.Mode)
	assert.Equal(t, "npx", cfg.InspectorCommand)
	assert.Equal(t, []string{"@modelcontextprotocol/inspector", "--cli"}, cfg.InspectorArgs)
	assert.Equal(t, 30*time.Second, cfg.DefaultTimeout.Std())
	assert.Equal(t, 60*time.Second, cfg.ComprehensiveTimeout.Std())
	assert.Equal(t, 5*time.Minute, cfg.MaxTimeout.Std())
	assert.Equal(t, 4, cfg.MaxConcurrentInspections)
}

func TestLoadConfigMissingPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().InspectorCommand, cfg.InspectorCommand)
}

func TestLoadConfigJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"mode": "readonly",
		"inspectorCommand": "npx",
		"defaultTimeout": "10s",
		"maxConcurrentInspections": 2
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ModeReadOnly, cfg.Mode)
	assert.Equal(t, 10*time.Second, cfg.DefaultTimeout.Std())
	assert.Equal(t, 2, cfg.MaxConcurrentInspections)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, []string{"@modelcontextprotocol/inspector", "--cli"}, cfg.InspectorArgs)
}

func TestLoadConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "mode: full\ndefaultTimeout: 45s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ModeFull, cfg.Mode)
	assert.Equal(t, 45*time.Second, cfg.DefaultTimeout.Std())
}

func TestLoadConfigInvalidMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"mode": "superuser"}`), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigNonexistentFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestClampTimeout(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 30*time.Second, cfg.ClampTimeout(0), "zero means default")
	assert.Equal(t, 10*time.Second, cfg.ClampTimeout(10*time.Second))
	assert.Equal(t, 5*time.Minute, cfg.ClampTimeout(time.Hour), "capped at max")
	assert.Equal(t, 30*time.Second, cfg.ClampTimeout(-time.Second), "negative means default")
}

func TestCapabilityModes(t *testing.T) {
	full := DefaultConfig()
	assert.True(t, full.CanCallTools())
	assert.True(t, full.CanWriteConfigs())
	assert.True(t, full.CanSetLogLevel())

	readonly := DefaultConfig()
	readonly.Mode = ModeReadOnly
	assert.False(t, readonly.CanCallTools())
	assert.False(t, readonly.CanWriteConfigs())
	assert.False(t, readonly.CanSetLogLevel())
}

func TestDurationUnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"90s"`)))
	assert.Equal(t, 90*time.Second, d.Std())

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, d.Std())

	assert.Error(t, d.UnmarshalJSON([]byte(`"not a duration"`)))
}
