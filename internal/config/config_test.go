package config_test

import (
	"gmao/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
http:
  addr: ":9090"
database:
  host: db
  port: 6543
jwt:
  tokenTTL: 1h
registration:
  managerKey: boss
security:
  bcryptCost: 12
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, "db", cfg.Database.Host)
	require.Equal(t, 6543, cfg.Database.Port)
	require.Equal(t, time.Hour, cfg.JWT.TokenTTL)
	require.Equal(t, "boss", cfg.Registration.ManagerKey)
	require.Empty(t, cfg.Registration.TechnicianKey)
	require.Equal(t, 12, cfg.Security.BcryptCost)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  addr: \":9090\"\n"), 0o600))
	t.Setenv("HTTP_ADDR", ":7070")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.HTTP.Addr)
}

func TestLoad_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("REGISTRATION_TECHNICIAN_KEY", "tech-key")
	t.Setenv("JWT_TOKEN_TTL", "15m")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "tech-key", cfg.Registration.TechnicianKey)
	require.Equal(t, 15*time.Minute, cfg.JWT.TokenTTL)
	require.Equal(t, 10, cfg.Security.BcryptCost)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("http: [not, a, map"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}
