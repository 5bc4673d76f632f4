package domain

import (
	"errors"
	"fmt"
	"time"
)

// MCPError represents a standardized error response
type MCPError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
}

// Error implements the error interface
func (e *MCPError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error codes for different failure scenarios
const (
	ErrInvalidInput   = "INVALID_INPUT"
	ErrValidation     = "VALIDATION_ERROR"
	ErrBatchTooLarge  = "BATCH_TOO_LARGE"
	ErrRateLimit      = "RATE_LIMIT_EXCEEDED"
	ErrRequestTimeout = "REQUEST_TIMEOUT"
	ErrNotFound       = "NOT_FOUND"
	ErrHistoryOff     = "HISTORY_DISABLED"
	ErrInternalServer = "INTERNAL_SERVER_ERROR"
)

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NewMCPError creates a new MCPError with timestamp
func NewMCPError(code, message, details, requestID string) *MCPError {
	return &MCPError{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
		RequestID: requestID,
	}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	}
}

// ErrorCode maps an error returned by the service layer to a client-facing
// error code.
func ErrorCode(err error) string {
	var validationErr *ValidationError
	var mcpErr *MCPError
	switch {
	case errors.As(err, &validationErr):
		return ErrValidation
	case errors.As(err, &mcpErr):
		return mcpErr.Code
	default:
		return ErrInternalServer
	}
}

// ToMCPError converts any error into the client-facing envelope.
func ToMCPError(err error, requestID string) *MCPError {
	var mcpErr *MCPError
	if errors.As(err, &mcpErr) {
		out := *mcpErr
		if out.RequestID == "" {
			out.RequestID = requestID
		}
		return &out
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return NewMCPError(ErrValidation, validationErr.Error(), validationErr.Field, requestID)
	}
	return NewMCPError(ErrInternalServer, "internal error", err.Error(), requestID)
}
