// Package main is the HTTP entry point of the PREVENT risk server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prevent-risk-mcp-server/internal/api"
	"github.com/prevent-risk-mcp-server/internal/config"
	"github.com/prevent-risk-mcp-server/internal/history"
	"github.com/prevent-risk-mcp-server/internal/service"
)

func main() {
	// Load configuration
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	cfg := configManager.GetConfig()
	logger := config.NewLogger(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)

	svcConfig := service.RiskServiceConfig{
		CacheMaxItems: cfg.Cache.MaxItems,
		BatchLimit:    cfg.Engine.BatchLimit,
	}

	if cfg.Cache.RedisURL != "" {
		redisCache, err := service.NewRedisCache(cfg.Cache.RedisURL, cfg.Cache.RedisTTL)
		if err != nil {
			log.Fatalf("Failed to create shared cache: %v", err)
		}
		defer redisCache.Close()

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			logger.WithError(err).Warn("Redis unreachable, continuing with in-memory cache only")
		}
		pingCancel()
		svcConfig.SharedCache = redisCache
	}

	if cfg.History.Driver != "" {
		store, err := history.Open(cfg.History.Driver, cfg.History.DSN, logger)
		if err != nil {
			log.Fatalf("Failed to open calculation history: %v", err)
		}
		defer store.Close()
		svcConfig.History = store
		logger.WithField("driver", cfg.History.Driver).Info("Calculation history enabled")
	}

	riskService, err := service.NewRiskService(logger, svcConfig)
	if err != nil {
		log.Fatalf("Failed to create risk service: %v", err)
	}

	server, err := api.NewServer(configManager, riskService, logger)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down...")
		cancel()
	}()

	logger.WithField("addr", cfg.Server.Host).WithField("port", cfg.Server.Port).Info("Starting PREVENT risk server")
	if err := server.Start(ctx); err != nil {
		log.Fatalf("Server failed: %v", err)
	}

	logger.Info("Server stopped")
}
