// Package errors provides the application error type used across the API.
// Service-layer errors are AppErrors so handlers can produce consistent
// responses without leaking internal details to clients.
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

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrSeedTransaction     = &AppError{Code: "SEED_TRANSACTION", Message: "Seed records cannot be deleted", StatusCode: http.StatusBadRequest}
)

// Category errors. An unknown category on a stored record is an invariant
// violation (the catalog is assumed complete for all records), hence 500.
var (
	ErrUnknownCategory = &AppError{Code: "UNKNOWN_CATEGORY", Message: "Unknown category key", StatusCode: http.StatusInternalServerError}
)

// Sale errors.
var (
	ErrSaleNotFound         = &AppError{Code: "SALE_NOT_FOUND", Message: "Sale not found", StatusCode: http.StatusNotFound}
	ErrUnknownPaymentMethod = &AppError{Code: "UNKNOWN_PAYMENT_METHOD", Message: "Unsupported payment method", StatusCode: http.StatusBadRequest}
)

// Investment errors.
var (
	ErrInvestmentNotFound = &AppError{Code: "INVESTMENT_NOT_FOUND", Message: "Investment not found", StatusCode: http.StatusNotFound}
)

// Credit card errors.
var (
	ErrCardNotFound = &AppError{Code: "CARD_NOT_FOUND", Message: "Credit card not found", StatusCode: http.StatusNotFound}
)
