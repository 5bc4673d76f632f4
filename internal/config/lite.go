// Package config provides configuration management for the risk service.
// This file contains the lightweight, environment-only configuration used by
// the MCP stdio server.
package config

import (
	"os"
	"strconv"
	"time"
)

// LiteConfig is a simplified configuration for standalone operation.
// It needs no config file and uses sensible defaults.
type LiteConfig struct {
	ServerName    string
	ServerVersion string

	// Cache settings
	CacheMaxItems int           // Maximum results kept in memory, 0 disables the cache
	RedisURL      string        // Optional shared cache, e.g. redis://localhost:6379/0
	RedisTTL      time.Duration // Lifetime of shared cache entries

	// History settings
	HistoryPath string // SQLite file recording calculations, empty disables history

	// Engine settings
	BatchLimit int // Maximum patients per batch call

	// Transport settings
	Transport string // Transport type: stdio

	// Logging
	LogLevel  string // Log level: debug, info, warn, error
	LogFormat string // Log format: json, text
}

// DefaultLiteConfig returns a configuration with sensible defaults.
func DefaultLiteConfig() *LiteConfig {
	return &LiteConfig{
		ServerName:    "prevent-risk-mcp-server",
		ServerVersion: "1.0.0",
		CacheMaxItems: 1024,
		RedisTTL:      time.Hour,
		BatchLimit:    100,
		Transport:     "stdio",
		LogLevel:      "info",
		LogFormat:     "json",
	}
}

// LoadLiteConfig loads configuration from environment variables.
// Falls back to defaults if not set.
func LoadLiteConfig() *LiteConfig {
	cfg := DefaultLiteConfig()

	if v := os.Getenv("PREVENT_CACHE_MAX_ITEMS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.CacheMaxItems = n
		}
	}
	if v := os.Getenv("PREVENT_REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv("PREVENT_REDIS_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RedisTTL = d
		}
	}

	if v := os.Getenv("PREVENT_HISTORY_PATH"); v != "" {
		cfg.HistoryPath = v
	}

	if v := os.Getenv("PREVENT_BATCH_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BatchLimit = n
		}
	}

	if v := os.Getenv("PREVENT_TRANSPORT"); v != "" {
		cfg.Transport = v
	}

	if v := os.Getenv("PREVENT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PREVENT_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	return cfg
}
