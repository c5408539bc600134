package errors

import (
	"net/http"

	"intercity/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// Is matches any BaseError carrying the same error code, so errors.Is works
// on copies produced by WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Network-related errors
	ErrCityNotFound = NewBaseError(
		http.StatusNotFound,
		"CITY_NOT_FOUND",
		"City not found",
		"",
	)

	ErrCityNameRequired = NewBaseError(
		http.StatusBadRequest,
		"CITY_NAME_REQUIRED",
		"City name is required",
		"",
	)

	ErrInvalidIndex = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INDEX",
		"City index out of range",
		"",
	)

	ErrInvalidMode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_MODE",
		"Unknown transport mode",
		"",
	)

	ErrInvalidDimension = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DIMENSION",
		"Search dimension must be cost or time",
		"",
	)

	ErrInvalidWeight = NewBaseError(
		http.StatusBadRequest,
		"INVALID_WEIGHT",
		"Cost and time must be non-negative",
		"",
	)

	ErrNetworkCapacityExceeded = NewBaseError(
		http.StatusInsufficientStorage,
		"NETWORK_CAPACITY_EXCEEDED",
		"The network cannot hold more cities",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
