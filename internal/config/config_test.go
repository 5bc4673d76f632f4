package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	cfg := m.GetConfig()
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 1024, m.GetCacheConfig().MaxItems)
	assert.True(t, m.GetRateLimitConfig().Enabled)
	assert.Equal(t, 100, m.GetEngineConfig().BatchLimit)
	assert.Equal(t, "stdio", m.GetMCPConfig().TransportType)
	assert.Empty(t, m.GetCacheConfig().RedisURL)
	assert.Equal(t, time.Hour, m.GetCacheConfig().RedisTTL)
	assert.Empty(t, m.GetHistoryConfig().Driver)
	assert.True(t, m.IsDevelopment())
	assert.False(t, m.IsProduction())
}

func TestNewManagerFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
environment: production
server:
  port: 9090
  request_timeout: 2s
logging:
  level: debug
  format: text
cache:
  max_items: 0
rate_limit:
  requests_per_second: 5
  burst: 10
engine:
  batch_limit: 10
history:
  driver: sqlite
  dsn: /var/lib/prevent/history.db
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	m, err := NewManagerFromFile(path)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	assert.Equal(t, 9090, m.GetServerConfig().Port)
	assert.Equal(t, 2*time.Second, m.GetServerConfig().RequestTimeout)
	assert.Equal(t, "debug", m.GetLoggingConfig().Level)
	assert.Equal(t, "text", m.GetLoggingConfig().Format)
	assert.Equal(t, 0, m.GetCacheConfig().MaxItems)
	assert.Equal(t, 5.0, m.GetRateLimitConfig().RequestsPerSecond)
	assert.Equal(t, 10, m.GetEngineConfig().BatchLimit)
	assert.Equal(t, "sqlite", m.GetHistoryConfig().Driver)
	assert.Equal(t, "/var/lib/prevent/history.db", m.GetHistoryConfig().DSN)
	assert.True(t, m.IsProduction())
}

func TestNewManagerFromFile_Missing(t *testing.T) {
	_, err := NewManagerFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestNewManager_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PREVENT_SERVER_PORT", "7070")
	t.Setenv("PREVENT_ENGINE_BATCH_LIMIT", "3")
	t.Setenv("PREVENT_CACHE_REDIS_URL", "redis://localhost:6379/2")

	m, err := NewManager()
	require.NoError(t, err)
	assert.Equal(t, "redis://localhost:6379/2", m.GetCacheConfig().RedisURL)

	assert.Equal(t, 7070, m.GetServerConfig().Port)
	assert.Equal(t, 3, m.GetEngineConfig().BatchLimit)
}

func TestManager_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *Manager)
		wantErr string
	}{
		{"bad port", func(m *Manager) { m.config.Server.Port = 0 }, "invalid server port"},
		{"tls without cert", func(m *Manager) { m.config.Server.TLSEnabled = true }, "TLS enabled"},
		{"negative cache", func(m *Manager) { m.config.Cache.MaxItems = -1 }, "cache max_items"},
		{"zero rate", func(m *Manager) { m.config.RateLimit.RequestsPerSecond = 0 }, "requests_per_second"},
		{"zero burst", func(m *Manager) { m.config.RateLimit.Burst = 0 }, "burst"},
		{"redis without ttl", func(m *Manager) { m.config.Cache.RedisURL = "redis://x"; m.config.Cache.RedisTTL = 0 }, "redis_ttl"},
		{"unknown history driver", func(m *Manager) { m.config.History.Driver = "mysql" }, "history driver"},
		{"history without dsn", func(m *Manager) { m.config.History.Driver = "postgres" }, "requires a dsn"},
		{"zero batch limit", func(m *Manager) { m.config.Engine.BatchLimit = 0 }, "batch_limit"},
		{"bad log level", func(m *Manager) { m.config.Logging.Level = "verbose" }, "log level"},
		{"bad log format", func(m *Manager) { m.config.Logging.Format = "xml" }, "log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			m, err := NewManager()
			require.NoError(t, err)

			tt.mutate(m)

			err = m.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestManager_RateLimitDisabledSkipsChecks(t *testing.T) {
	t.Chdir(t.TempDir())
	m, err := NewManager()
	require.NoError(t, err)

	m.config.RateLimit.Enabled = false
	m.config.RateLimit.Burst = 0

	assert.NoError(t, m.Validate())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger("debug", "text", &buf)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	logger = NewLogger("nonsense", "json", &buf)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	logger.Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
