package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("LABOR_CONFIG_FILE", path)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LABOR_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxSizeBytes)
	assert.Equal(t, []string{".csv", ".xlsx"}, cfg.Upload.AllowedExtensions)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Security.RateLimit.Enabled)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	writeConfigFile(t, `
server:
  port: 9090
logging:
  level: debug
upload:
  max_size_bytes: 1024
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, int64(1024), cfg.Upload.MaxSizeBytes)
	// Untouched sections keep their defaults
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{".csv", ".xlsx"}, cfg.Upload.AllowedExtensions)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	writeConfigFile(t, "server:\n  port: 9090\n")
	t.Setenv("LABOR_SERVER_PORT", "7070")
	t.Setenv("LABOR_LOGGING_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "port out of range", yaml: "server:\n  port: 70000\n"},
		{name: "bad log level", yaml: "logging:\n  level: loud\n"},
		{name: "zero upload limit", yaml: "upload:\n  max_size_bytes: 0\n"},
		{name: "extension without dot", yaml: "upload:\n  allowed_extensions: [csv]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfigFile(t, tt.yaml)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	writeConfigFile(t, "server: [not a map\n")

	_, err := Load()
	assert.Error(t, err)
}

func TestAllowsExtension(t *testing.T) {
	u := UploadConfig{AllowedExtensions: []string{".csv", ".xlsx"}}

	assert.True(t, u.AllowsExtension(".csv"))
	assert.True(t, u.AllowsExtension(".CSV"))
	assert.True(t, u.AllowsExtension(".Xlsx"))
	assert.False(t, u.AllowsExtension(".pdf"))
	assert.False(t, u.AllowsExtension(""))
}

func TestListenAddr(t *testing.T) {
	s := ServerConfig{Port: 8080}
	assert.Equal(t, ":8080", s.ListenAddr())
}
