package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimal = `
api:
  base_url: http://rental.local
`

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(minimal))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 8081, cfg.Server.GRPCPort)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 15*time.Second, cfg.APITimeout())
	assert.Equal(t, "0 0 3 * * *", cfg.Scheduler.AuditReservationQuotes)
	assert.Equal(t, ":8080", cfg.GetServerAddress())
	assert.Equal(t, ":8081", cfg.GetGRPCAddress())
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://override.local")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Parse([]byte(minimal))
	require.NoError(t, err)
	assert.Equal(t, "https://override.local", cfg.API.BaseURL)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 9091, cfg.Server.GRPCPort)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"missing base url", "log:\n  level: info\n", "API base URL is required"},
		{"bad scheme", "api:\n  base_url: ftp://rental.local\n", "invalid API base URL"},
		{"bad port", "server:\n  port: 70000\napi:\n  base_url: http://rental.local\n", "invalid server port"},
		{"same ports", "server:\n  port: 8080\n  grpc_port: 8080\napi:\n  base_url: http://rental.local\n", "must differ"},
		{"sendgrid without sender", "api:\n  base_url: http://rental.local\nnotify:\n  sendgrid_api_key: SG.x\n", "from_email"},
		{"malformed yaml", "api: [", "failed to parse config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimal), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://rental.local", cfg.API.BaseURL)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}
