// Package errors defines application-level errors carrying HTTP status and
// business error codes for the delivery layer.
package errors

import (
	"net/http"

	"tourguide/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"no user registered under that name",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"a user with that name is already registered",
		"",
	)

	// Tracking-related errors
	ErrPositionUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"POSITION_UNAVAILABLE",
		"the position provider could not report a location",
		"",
	)

	ErrTrackerNotRunning = NewBaseError(
		http.StatusConflict,
		"TRACKER_NOT_RUNNING",
		"the tracking scheduler is not running",
		"",
	)

	ErrTrackerAlreadyRunning = NewBaseError(
		http.StatusConflict,
		"TRACKER_ALREADY_RUNNING",
		"the tracking scheduler is already running",
		"",
	)

	// Catalog and pricing errors
	ErrCatalogUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"CATALOG_UNAVAILABLE",
		"the attraction catalog could not be listed",
		"",
	)

	ErrPricingUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"PRICING_UNAVAILABLE",
		"trip deals could not be quoted",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)
)
