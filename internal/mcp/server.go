// Package mcp exposes the PREVENT risk service as Model Context Protocol
// tools, resources and prompts over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/prevent-risk-mcp-server/internal/config"
	"github.com/prevent-risk-mcp-server/internal/domain"
	"github.com/prevent-risk-mcp-server/internal/history"
	"github.com/prevent-risk-mcp-server/internal/service"
)

// Server is a lightweight MCP server. Results are cached in memory by the
// risk service; Redis and a SQLite history file are optional.
type Server struct {
	config     *config.LiteConfig
	mcpServer  *mcp.Server
	calculator domain.RiskCalculator
	logger     *logrus.Logger
	closers    []io.Closer
}

// ServerOption is a functional option for Server.
type ServerOption func(*Server) error

// WithLogger sets a custom logger.
func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.logger = logger
		return nil
	}
}

// WithCalculator replaces the default risk service.
func WithCalculator(calculator domain.RiskCalculator) ServerOption {
	return func(s *Server) error {
		if calculator == nil {
			return fmt.Errorf("calculator must not be nil")
		}
		s.calculator = calculator
		return nil
	}
}

// NewServer creates a new MCP server instance.
func NewServer(cfg *config.LiteConfig, opts ...ServerOption) (*Server, error) {
	// stdout carries the protocol, so logs go to stderr.
	server := &Server{
		config: cfg,
		logger: config.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr),
	}

	for _, opt := range opts {
		if err := opt(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.calculator == nil {
		if err := server.initRiskService(); err != nil {
			server.Close()
			return nil, err
		}
	}

	server.mcpServer = mcp.NewServer(&mcp.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}, nil)

	server.registerTools()
	server.registerResources()
	server.registerPrompts()

	server.logger.Info("MCP server initialized successfully")
	return server, nil
}

// initRiskService builds the default risk service with the optional shared
// cache and history configured in the environment.
func (s *Server) initRiskService() error {
	svcConfig := service.RiskServiceConfig{
		CacheMaxItems: s.config.CacheMaxItems,
		BatchLimit:    s.config.BatchLimit,
	}

	if s.config.RedisURL != "" {
		redisCache, err := service.NewRedisCache(s.config.RedisURL, s.config.RedisTTL)
		if err != nil {
			return fmt.Errorf("failed to create shared cache: %w", err)
		}
		s.closers = append(s.closers, redisCache)
		svcConfig.SharedCache = redisCache
		s.logger.Info("Shared result cache enabled")
	}

	if s.config.HistoryPath != "" {
		store, err := history.NewSQLiteStore(s.config.HistoryPath)
		if err != nil {
			return fmt.Errorf("failed to open calculation history: %w", err)
		}
		s.closers = append(s.closers, store)
		svcConfig.History = store
		s.logger.WithField("path", s.config.HistoryPath).Info("Calculation history enabled")
	}

	riskService, err := service.NewRiskService(s.logger, svcConfig)
	if err != nil {
		return fmt.Errorf("failed to create risk service: %w", err)
	}
	s.calculator = riskService
	return nil
}

// Close releases the shared cache and history store, if any.
func (s *Server) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

// Start runs the server on the configured transport until ctx is cancelled
// or the client disconnects.
func (s *Server) Start(ctx context.Context) error {
	if s.config.Transport != "stdio" {
		return fmt.Errorf("unsupported transport: %s", s.config.Transport)
	}

	s.logger.WithField("transport_type", s.config.Transport).Info("Starting PREVENT MCP server")

	if err := s.mcpServer.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

// Connect serves a single session on t. Used with in-memory transports.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.mcpServer.Connect(ctx, t, nil)
}
