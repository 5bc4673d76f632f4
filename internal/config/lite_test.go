package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLiteConfig(t *testing.T) {
	cfg := DefaultLiteConfig()

	assert.Equal(t, "prevent-risk-mcp-server", cfg.ServerName)
	assert.NotEmpty(t, cfg.ServerVersion)
	assert.Equal(t, 1024, cfg.CacheMaxItems)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, time.Hour, cfg.RedisTTL)
	assert.Empty(t, cfg.HistoryPath)
	assert.Equal(t, 100, cfg.BatchLimit)
	assert.Equal(t, "stdio", cfg.Transport)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadLiteConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg := LoadLiteConfig()

	assert.Equal(t, DefaultLiteConfig(), cfg)
}

func TestLoadLiteConfig_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("PREVENT_CACHE_MAX_ITEMS", "0")
	t.Setenv("PREVENT_BATCH_LIMIT", "25")
	t.Setenv("PREVENT_TRANSPORT", "stdio")
	t.Setenv("PREVENT_LOG_LEVEL", "debug")
	t.Setenv("PREVENT_LOG_FORMAT", "text")
	t.Setenv("PREVENT_REDIS_URL", "redis://cache:6379/1")
	t.Setenv("PREVENT_REDIS_TTL", "15m")
	t.Setenv("PREVENT_HISTORY_PATH", "/tmp/prevent.db")

	cfg := LoadLiteConfig()

	assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
	assert.Equal(t, 15*time.Minute, cfg.RedisTTL)
	assert.Equal(t, "/tmp/prevent.db", cfg.HistoryPath)

	assert.Equal(t, 0, cfg.CacheMaxItems)
	assert.Equal(t, 25, cfg.BatchLimit)
	assert.Equal(t, "stdio", cfg.Transport)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadLiteConfig_IgnoresInvalidNumbers(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("PREVENT_CACHE_MAX_ITEMS", "-5")
	t.Setenv("PREVENT_BATCH_LIMIT", "many")
	t.Setenv("PREVENT_REDIS_TTL", "-1s")

	cfg := LoadLiteConfig()

	assert.Equal(t, time.Hour, cfg.RedisTTL)

	assert.Equal(t, 1024, cfg.CacheMaxItems)
	assert.Equal(t, 100, cfg.BatchLimit)
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	vars := []string{
		"PREVENT_CACHE_MAX_ITEMS",
		"PREVENT_BATCH_LIMIT",
		"PREVENT_TRANSPORT",
		"PREVENT_LOG_LEVEL",
		"PREVENT_LOG_FORMAT",
		"PREVENT_REDIS_URL",
		"PREVENT_REDIS_TTL",
		"PREVENT_HISTORY_PATH",
	}
	for _, v := range vars {
		t.Setenv(v, "")
	}
}
