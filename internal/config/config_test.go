package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.MetricsConfig.Enabled)
	assert.Equal(t, "/metrics", cfg.MetricsConfig.Path)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Empty(t, cfg.Auth.JWTSecret)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
port: 8080
log_level: debug
catalog: /etc/pantry/catalog.yaml
metrics:
  enabled: true
  port: 9100
  path: ""
auth:
  jwt_secret: s3cret
cors:
  allowed_origins: ["http://localhost:3000"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/etc/pantry/catalog.yaml", cfg.Catalog)
	assert.Equal(t, 9100, cfg.MetricsConfig.Port)
	assert.Equal(t, "/metrics", cfg.MetricsConfig.Path)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PANTRY_JWT_SECRET", "from-env")
	t.Setenv("PANTRY_PORT", "7000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, 7000, cfg.Port)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed yaml", "port: [1"},
		{"port out of range", "port: 70000"},
		{"unknown log level", "log_level: chatty"},
		{"metrics port clash", "port: 9090\nmetrics:\n  enabled: true\n  port: 9090"},
		{"relative metrics path", "metrics:\n  path: metrics"},
		{"bare cors origin", "cors:\n  allowed_origins: [\"localhost:3000\"]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidEnvPort(t *testing.T) {
	t.Setenv("PANTRY_PORT", "not-a-port")

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate_LeavesConfigUntouched(t *testing.T) {
	cfg := Default()
	cfg.MetricsConfig.Path = ""

	assert.Error(t, cfg.Validate())
	assert.Empty(t, cfg.MetricsConfig.Path)

	cfg.MetricsConfig.Enabled = false
	assert.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.MetricsConfig.Path)
}
