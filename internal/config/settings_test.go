package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/chronos-workspace/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "PORT", "LOG_LEVEL", "APP_TIMEZONE", "CORS_ORIGINS", "COOKIE_DOMAIN",
		"DATABASE_DRIVER", "DATABASE_DSN", "REDIS_ADDR", "REDIS_PASSWORD",
		"INVALIDATION_CHANNEL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	} {
		t.Setenv(k, "")
	}
}

func TestParse_Defaults(t *testing.T) {
	clearEnv(t)

	s, err := config.Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, "development", s.Env)
	assert.Equal(t, 8080, s.Port)
	assert.Equal(t, "postgres", s.Database.Driver)
	assert.Equal(t, "America/Sao_Paulo", s.Timezone)
	assert.Equal(t, "chronos:invalidate", s.Redis.Channel)
	assert.Equal(t, 20, s.RateLimit.RequestsPerSecond)
	assert.Equal(t, 10*time.Second, s.Shutdown)
}

func TestParse_YAML(t *testing.T) {
	clearEnv(t)

	data := []byte(`
port: 9090
timezone: UTC
database:
  driver: sqlite
  dsn: "file:chronos.db"
redis:
  addr: "localhost:6379"
cors_origins:
  - https://app.example.com
`)
	s, err := config.Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 9090, s.Port)
	assert.Equal(t, "sqlite", s.Database.Driver)
	assert.Equal(t, "file:chronos.db", s.Database.DSN)
	assert.Equal(t, "localhost:6379", s.Redis.Addr)
	assert.Equal(t, []string{"https://app.example.com"}, s.CORSOrigins)
	assert.Equal(t, time.UTC, s.Location())
}

func TestParse_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")
	t.Setenv("DATABASE_DRIVER", "mysql")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("COOKIE_DOMAIN", ".example.com")

	s, err := config.Parse([]byte("port: 9090\n"))
	require.NoError(t, err)

	assert.Equal(t, 7000, s.Port)
	assert.Equal(t, "mysql", s.Database.Driver)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, s.CORSOrigins)
	assert.Equal(t, ".example.com", s.CookieDomain)
}

func TestParse_ValidationErrors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		yaml string
	}{
		{"unknown driver", "database:\n  driver: oracle\n"},
		{"bad timezone", "timezone: Mars/Olympus\n"},
		{"port out of range", "port: 70000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "chronos.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env: production\n"), 0o600))

	s, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "production", s.Env)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
