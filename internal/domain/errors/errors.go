// Package errors defines application-level errors carrying an HTTP status,
// a stable business error code and a user-facing message, so the delivery
// layer can tell "no results" apart from "the service is down".
package errors

import (
	"net/http"

	"foodmap/internal/errors"
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
	// ErrInvalidRadius is a user-input error: the requested radius is below
	// the configured minimum. Rejected before any network call, never
	// silently clamped.
	ErrInvalidRadius = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RADIUS",
		"search radius is below the minimum allowed",
		"",
	)

	// ErrUnresolvableAddress means geocoding failed or returned zero results.
	// Recoverable by retrying with a pin or a different address.
	ErrUnresolvableAddress = NewBaseError(
		http.StatusUnprocessableEntity,
		"UNRESOLVABLE_ADDRESS",
		"the address could not be located; try a pin or a different address",
		"",
	)

	// ErrStoreUnavailable is an infrastructure failure of the facility store.
	// Must never be conflated with an empty result set.
	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"the facility store is currently unavailable",
		"",
	)

	// ErrOutsideEligibleArea means a user-picked point falls outside every
	// loaded area polygon. A scoping condition, not a system failure.
	ErrOutsideEligibleArea = NewBaseError(
		http.StatusUnprocessableEntity,
		"OUTSIDE_ELIGIBLE_AREA",
		"the selected point is outside the covered neighborhoods",
		"",
	)

	// ErrAreaNotFound means a named area does not match any loaded area.
	ErrAreaNotFound = NewBaseError(
		http.StatusNotFound,
		"AREA_NOT_FOUND",
		"no neighborhood with that name is loaded",
		"",
	)

	// ErrInvalidSamplePct means the preview sampling fraction is outside (0, 1].
	ErrInvalidSamplePct = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SAMPLE_PCT",
		"sample_pct must be greater than 0 and at most 1",
		"",
	)

	// ErrAmbiguousCenter means a search carried both an address and a pin
	// with no hint resolving the conflict at the delivery boundary.
	ErrAmbiguousCenter = NewBaseError(
		http.StatusBadRequest,
		"AMBIGUOUS_CENTER",
		"provide an address or a pin, not both",
		"",
	)

	// ErrMissingCenter means a search carried neither an address nor a pin.
	ErrMissingCenter = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CENTER",
		"a search needs an address or a pin",
		"",
	)

	// ErrValidationFailed covers request binding/validation failures.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	// ErrIntentUnavailable means the external text-to-intent service failed.
	ErrIntentUnavailable = NewBaseError(
		http.StatusBadGateway,
		"INTENT_UNAVAILABLE",
		"the search understanding service is currently unavailable",
		"",
	)

	// ErrInternalError is the catch-all for unexpected failures.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// StoreExecuteError wraps a driver-level store failure, implementing the
// AppError interface while preserving the cause for logging.
type StoreExecuteError struct {
	err     error
	details string
}

// NewStoreExecuteError creates a store-related error
func NewStoreExecuteError(err error, details string) AppError {
	return &StoreExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreExecuteError) Error() string {
	return errors.Wrap(e.err, "facility store execution failed").Error()
}

// Unwrap exposes the cause for errors.Is/As.
func (e *StoreExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StoreExecuteError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *StoreExecuteError) ErrorCode() string {
	return "STORE_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *StoreExecuteError) Message() string {
	return "the facility store is currently unavailable"
}

// Details returns detailed error information
func (e *StoreExecuteError) Details() string {
	return e.details
}
