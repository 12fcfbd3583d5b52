package dto

import (
	"time"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeInvalidRequest   ErrorCode = "VAL_002"
	ErrorCodeInvalidToken     ErrorCode = "AUTH_005"
	ErrorCodeExpiredToken     ErrorCode = "AUTH_006"
	ErrorCodeInternalServer   ErrorCode = "SRV_001"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success   bool        `json:"success" example:"false"`
	Error     string      `json:"error" example:"Title, description, and date are required"`
	Code      ErrorCode   `json:"code,omitempty" example:"VAL_001"`
	Details   interface{} `json:"details,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(code ErrorCode, message string) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     message,
		Code:      code,
		Timestamp: time.Now(),
	}
}

// WithDetails adds additional details to the error
func (e *ErrorResponse) WithDetails(details interface{}) *ErrorResponse {
	e.Details = details
	return e
}
