// Package error defines domain-specific errors for the Expense Chat application.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrAnalyticsQueryFailed is returned when the underlying store cannot serve an aggregation.
	ErrAnalyticsQueryFailed = errors.New("analytics query failed")

	// ErrInvalidAnalyticsFilter is returned when a supplied time filter cannot be interpreted.
	ErrInvalidAnalyticsFilter = errors.New("invalid analytics filter")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAnalyticsFilter AnalyticsErrorCode = "ANL-010001"

	// Dependency errors (02XXXX)
	ErrCodeAnalyticsQueryFailed AnalyticsErrorCode = "ANL-020001"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
