// Package errors provides custom error types for the Finvault API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Incorrect username or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Not authorized to access this resource", StatusCode: http.StatusForbidden}
	ErrInactiveUser       = &AppError{Code: "INACTIVE_USER", Message: "Inactive user", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Store errors. Read-side corruption is recovered as an empty collection by
// the store itself; only failed writes surface this error.
var (
	ErrStoreUnavailable = &AppError{Code: "STORE_UNAVAILABLE", Message: "Record store is unavailable", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound      = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail    = &AppError{Code: "DUPLICATE_EMAIL", Message: "Email already registered", StatusCode: http.StatusBadRequest}
	ErrDuplicateUsername = &AppError{Code: "DUPLICATE_USERNAME", Message: "Username already registered", StatusCode: http.StatusBadRequest}
)

// Card errors.
var (
	ErrCardNotFound    = &AppError{Code: "CARD_NOT_FOUND", Message: "Card not found", StatusCode: http.StatusNotFound}
	ErrInvalidLastFour = &AppError{Code: "INVALID_LAST_FOUR", Message: "Last four digits must be exactly 4 numeric characters", StatusCode: http.StatusBadRequest}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	// A card id supplied on a transaction is an argument value, not the
	// addressed resource, so an unresolved reference is invalid input.
	ErrCardNotResolved = &AppError{Code: "CARD_NOT_RESOLVED", Message: "Referenced card not found", StatusCode: http.StatusBadRequest}
	ErrCardIDRequired  = &AppError{Code: "CARD_ID_REQUIRED", Message: "card_id is required when payment_method is card", StatusCode: http.StatusBadRequest}
)

// Savings envelope errors.
var (
	ErrEnvelopeNotFound = &AppError{Code: "ENVELOPE_NOT_FOUND", Message: "Savings envelope not found", StatusCode: http.StatusNotFound}
	ErrInvalidAmount    = &AppError{Code: "INVALID_AMOUNT", Message: "Amount must be greater than zero", StatusCode: http.StatusBadRequest}
)

// Payment reminder errors.
var (
	ErrReminderNotFound = &AppError{Code: "REMINDER_NOT_FOUND", Message: "Payment reminder not found", StatusCode: http.StatusNotFound}
)
