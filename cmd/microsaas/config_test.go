package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadCLIConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadCLIConfig("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, defaultHTTPAddr, cfg.HTTPAddr)
	assert.Equal(t, defaultSessionLimit, cfg.SessionLimit)
	assert.True(t, cfg.AltScreen)
	assert.True(t, cfg.Mouse)
	assert.Equal(t, 100, cfg.NarrowWidth)
	assert.False(t, cfg.ReverseScrollWheel)
}

func TestLoadCLIConfig_File(t *testing.T) {
	path := writeConfig(t, `
log-level: debug
http-addr: 0.0.0.0:8080
session-limit: 16
mouse: false
narrow-width: 120
reverse-scroll-wheel: true
`)

	cfg, err := loadCLIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr)
	assert.Equal(t, 16, cfg.SessionLimit)
	assert.False(t, cfg.Mouse)
	assert.True(t, cfg.AltScreen, "unset keys keep their defaults")
	assert.Equal(t, 120, cfg.NarrowWidth)
	assert.True(t, cfg.ReverseScrollWheel)
}

func TestLoadCLIConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "http-addr: 0.0.0.0:8080\n")
	t.Setenv("MICROSAAS_HTTP_ADDR", "127.0.0.1:9999")
	t.Setenv("MICROSAAS_NARROW_WIDTH", "80")

	cfg, err := loadCLIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.HTTPAddr)
	assert.Equal(t, 80, cfg.NarrowWidth)
}

func TestLoadCLIConfig_MissingExplicitFileUsesDefaults(t *testing.T) {
	cfg, err := loadCLIConfig(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, defaultHTTPAddr, cfg.HTTPAddr)
}

func TestLoadCLIConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"log level":     "log-level: loud\n",
		"session limit": "session-limit: 0\n",
		"narrow width":  "narrow-width: 10\n",
		"malformed":     "http-addr: [\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadCLIConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
