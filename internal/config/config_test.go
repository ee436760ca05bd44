package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, 5*time.Second, cfg.Ingestion.PollInterval.Std())
	assert.Equal(t, 120*time.Second, cfg.Ingestion.PollCeiling.Std())
	assert.NoError(t, cfg.Validate())
}

func TestDurationUnmarshal(t *testing.T) {
	var d Duration
	require.NoError(t, yaml.Unmarshal([]byte("90s"), &d))
	assert.Equal(t, 90*time.Second, d.Std())

	assert.Error(t, yaml.Unmarshal([]byte("ninety seconds"), &d))
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
server:
  port: 9090
ingestion:
  fetch_timeout: 10s
observability:
  log_level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Ingestion.FetchTimeout.Std())
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
	// Untouched fields keep their defaults.
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "7070")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Observability.LogLevel)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"empty model", func(c *Config) { c.Gemini.Model = "" }},
		{"zero fetch timeout", func(c *Config) { c.Ingestion.FetchTimeout = 0 }},
		{"ceiling below interval", func(c *Config) { c.Ingestion.PollCeiling = Duration(time.Second) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
