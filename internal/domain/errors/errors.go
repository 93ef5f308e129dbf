package errors

import (
	"net/http"

	"marquee/internal/errors"
)

// Stable machine-readable error kinds returned to clients.
const (
	KindValidation   = "VALIDATION_ERROR"
	KindConflict     = "CONFLICT"
	KindUnauthorized = "UNAUTHORIZED"
	KindNotFound     = "NOT_FOUND"
	KindInvalidToken = "INVALID_TOKEN"
	KindUpstream     = "UPSTREAM_ERROR"
	KindInternal     = "INTERNAL_ERROR"
	KindRateLimited  = "RATE_LIMITED"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Error kind, one of the Kind* constants
	Message() string   // User-facing message
	Details() string   // Debug-only information, may be empty
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

// Is matches on kind and message so a copy made by WithDetails still satisfies
// errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.message == t.message && e.httpCode == t.httpCode
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

// WithDetails returns a copy carrying debug details.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithStatus returns a copy answering with another HTTP status.
func (e *BaseError) WithStatus(httpCode int) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   e.details,
	}
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		KindValidation,
		"Username, email, and password are required",
		"",
	)

	// ErrPasswordTooLong is bcrypt's input limit, counted in bytes.
	ErrPasswordTooLong = NewValidationError("password must be at most 72 bytes")

	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		KindConflict,
		"User already exists",
		"",
	)

	// ErrInvalidCredentials is shared by every login failure cause.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		KindUnauthorized,
		"Invalid username or password",
		"",
	)

	ErrInvalidFederatedToken = NewBaseError(
		http.StatusUnauthorized,
		KindUnauthorized,
		"Invalid Google token",
		"",
	)

	ErrFederatedNotConfigured = NewBaseError(
		http.StatusInternalServerError,
		KindInternal,
		"Google Client ID not configured on server",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		KindNotFound,
		"User with this email not found",
		"",
	)

	ErrInvalidResetToken = NewBaseError(
		http.StatusBadRequest,
		KindInvalidToken,
		"Invalid or expired reset token",
		"",
	)

	ErrTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		KindUnauthorized,
		"Authorization header is missing",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		KindUnauthorized,
		"Invalid or expired token",
		"",
	)

	ErrUpstream = NewBaseError(
		http.StatusBadGateway,
		KindUpstream,
		"TMDB API Error",
		"",
	)

	// ErrUpstreamUnavailable covers transport failures talking to the movie provider.
	ErrUpstreamUnavailable = NewBaseError(
		http.StatusInternalServerError,
		KindUpstream,
		"An unexpected error occurred",
		"",
	)

	ErrQueryRequired = NewBaseError(
		http.StatusBadRequest,
		KindValidation,
		"Query parameter 'q' is required",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		KindRateLimited,
		"rate limit exceeded",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		KindNotFound,
		"API route not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		KindInternal,
		"Internal server error",
		"",
	)
)

// NewValidationError builds a 400 for a specific malformed input.
func NewValidationError(message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, KindValidation, message, "")
}

// NewUpstreamError relays an upstream HTTP failure with its status and message.
func NewUpstreamError(httpCode int, message string) *BaseError {
	return NewBaseError(httpCode, KindUpstream, message, "")
}

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

// Unwrap exposes the driver error to errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return KindInternal
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details + ": " + e.err.Error()
}
