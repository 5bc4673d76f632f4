package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/prevent-risk-mcp-server/internal/domain"
	"github.com/prevent-risk-mcp-server/internal/middleware"
)

const version = "1.0.0"

// Server represents the HTTP server
type Server struct {
	configManager domain.ConfigManager
	calculator    domain.RiskCalculator
	logger        *logrus.Logger
	router        *gin.Engine
	server        *http.Server
}

// NewServer creates a new HTTP server instance
func NewServer(configManager domain.ConfigManager, calculator domain.RiskCalculator, logger *logrus.Logger) (*Server, error) {
	cfg := configManager.GetConfig()

	// Set Gin mode based on environment
	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.AuditLogger(logger))
	router.Use(middleware.SecurityHeaders())
	router.Use(corsMiddleware())
	router.Use(middleware.RequestTimeout(cfg.Server.RequestTimeout))

	if cfg.RateLimit.Enabled {
		limiter, err := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		if err != nil {
			return nil, fmt.Errorf("failed to create rate limiter: %w", err)
		}
		router.Use(limiter.Middleware())
	}

	server := &Server{
		configManager: configManager,
		calculator:    calculator,
		logger:        logger,
		router:        router,
	}

	server.setupRoutes()

	return server, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until ctx is cancelled or the
// listener fails.
func (s *Server) Start(ctx context.Context) error {
	cfg := s.configManager.GetServerConfig()
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("HTTP server listening")
		var err error
		if cfg.TLSEnabled {
			err = s.server.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile)
		} else {
			err = s.server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start server: %w", err)
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(shutdownCtx)
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/risk", s.handleCalculateRisk)
		v1.POST("/risk/batch", s.handleCalculateBatch)
		v1.POST("/risk/interpret", s.handleInterpret)
		v1.GET("/model/info", s.handleModelInfo)
		v1.GET("/calculations", s.handleListCalculations)
		v1.GET("/calculations/:id", s.handleGetCalculation)
	}
}

// pageQuery is the pagination of GET /api/v1/calculations.
type pageQuery struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   version,
	})
}

// handleCalculateRisk computes the six PREVENT scores for one patient
func (s *Server) handleCalculateRisk(c *gin.Context) {
	var req domain.RiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	resp, err := s.calculator.Calculate(c.Request.Context(), &req)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// handleCalculateBatch computes scores for several patients
func (s *Server) handleCalculateBatch(c *gin.Context) {
	var req domain.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	resp, err := s.calculator.CalculateBatch(c.Request.Context(), req.Patients)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// handleInterpret maps a percentage to its risk category
func (s *Server) handleInterpret(c *gin.Context) {
	var req domain.InterpretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	resp, err := s.calculator.Interpret(&req)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// handleModelInfo reports the equations and accepted input ranges
func (s *Server) handleModelInfo(c *gin.Context) {
	c.JSON(http.StatusOK, s.calculator.ModelInfo())
}

// handleGetCalculation returns one recorded calculation
func (s *Server) handleGetCalculation(c *gin.Context) {
	rec, err := s.calculator.GetCalculation(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// handleListCalculations pages through recorded calculations, newest first
func (s *Server) handleListCalculations(c *gin.Context) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s.badRequest(c, err)
		return
	}

	page, err := s.calculator.ListCalculations(c.Request.Context(), q.Limit, q.Offset)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (s *Server) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, domain.NewMCPError(
		domain.ErrInvalidInput,
		"Malformed request",
		err.Error(),
		requestID(c),
	))
}

// writeError renders a service error with the matching HTTP status.
func (s *Server) writeError(c *gin.Context, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		c.JSON(http.StatusGatewayTimeout, domain.NewMCPError(
			domain.ErrRequestTimeout, "Request timeout", "", requestID(c),
		))
		return
	}

	envelope := domain.ToMCPError(err, requestID(c))

	status := http.StatusInternalServerError
	switch envelope.Code {
	case domain.ErrValidation, domain.ErrInvalidInput:
		status = http.StatusBadRequest
	case domain.ErrBatchTooLarge:
		status = http.StatusRequestEntityTooLarge
	case domain.ErrNotFound:
		status = http.StatusNotFound
	case domain.ErrHistoryOff:
		status = http.StatusNotImplemented
	default:
		s.logger.WithError(err).WithField("correlation_id", requestID(c)).Error("Risk calculation failed")
	}

	c.JSON(status, envelope)
}

func requestID(c *gin.Context) string {
	return c.GetString(middleware.CorrelationIDKey)
}

// corsMiddleware adds CORS headers to responses
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-Correlation-ID")
		c.Header("Access-Control-Expose-Headers", "Content-Length, X-Correlation-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
