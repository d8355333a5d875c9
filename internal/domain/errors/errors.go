// Package errors defines the application error taxonomy. Every failure that
// crosses the delivery boundary is one of these, so handlers never leak
// schema details or other tenants' existence.
package errors

import (
	"net/http"

	"vouch/internal/errors"
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
	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Submitted data failed validation",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Status must be pending, approved or rejected",
		"",
	)

	// Authentication / tenant errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authentication is required",
		"",
	)

	ErrNoTenant = NewBaseError(
		http.StatusForbidden,
		"ONBOARDING_REQUIRED",
		"No company is associated with this account yet",
		"",
	)

	ErrCompanyOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"COMPANY_OWNERSHIP_VIOLATION",
		"A company may only be updated by its own members",
		"",
	)

	ErrProfileAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PROFILE_ALREADY_EXISTS",
		"This account already belongs to a company",
		"",
	)

	// Not-found errors. Cross-tenant rows surface as the same not-found
	// failure as missing rows so tenants cannot be enumerated.
	ErrCompanyNotFound = NewBaseError(
		http.StatusNotFound,
		"COMPANY_NOT_FOUND",
		"Company not found",
		"",
	)

	ErrVideoNotFound = NewBaseError(
		http.StatusNotFound,
		"VIDEO_NOT_FOUND",
		"Video not found",
		"",
	)

	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"Review not found",
		"",
	)

	// Upload errors
	ErrUnsupportedMediaType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_MEDIA_TYPE",
		"Only video files (mp4, quicktime, avi, webm, matroska) may be uploaded",
		"",
	)

	ErrFileTooLarge = NewBaseError(
		http.StatusBadRequest,
		"FILE_TOO_LARGE",
		"Video files must be 100MB or smaller",
		"",
	)

	// Upstream provider errors, retryable from the caller's perspective
	ErrAssistantUnavailable = NewBaseError(
		http.StatusBadGateway,
		"ASSISTANT_UNAVAILABLE",
		"The review assistant is temporarily unavailable, please try again",
		"",
	)

	ErrUploadUnavailable = NewBaseError(
		http.StatusBadGateway,
		"UPLOAD_UNAVAILABLE",
		"The upload service is temporarily unavailable, please try again",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong, please try again",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Something went wrong, please try again"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
