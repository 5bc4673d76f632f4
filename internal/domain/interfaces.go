package domain

import (
	"context"
)

// RiskCalculator computes PREVENT scores for request DTOs.
type RiskCalculator interface {
	Calculate(ctx context.Context, req *RiskRequest) (*RiskResponse, error)
	CalculateBatch(ctx context.Context, reqs []RiskRequest) (*BatchResponse, error)
	Interpret(req *InterpretRequest) (*InterpretResponse, error)
	ModelInfo() *ModelInfo
	CalculationHistory
}

// ConfigManager defines the interface for configuration management
type ConfigManager interface {
	GetConfig() *Config
	GetServerConfig() *ServerConfig
	GetLoggingConfig() *LoggingConfig
	GetCacheConfig() *CacheConfig
	GetRateLimitConfig() *RateLimitConfig
	GetEngineConfig() *EngineConfig
	GetHistoryConfig() *HistoryConfig
	GetMCPConfig() *MCPConfig
	Reload() error
	Validate() error
	IsProduction() bool
	IsDevelopment() bool
}
