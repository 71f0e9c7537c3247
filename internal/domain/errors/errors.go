// Package errors defines the application-facing error catalog. Every
// rejected operation maps to one of these values so the delivery layer
// can render a stable error code and HTTP status.
package errors

import (
	"net/http"

	"cakery/internal/errors"
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
	// Lookup errors
	ErrDesignNotFound = NewBaseError(
		http.StatusNotFound,
		"DESIGN_NOT_FOUND",
		"Design request not found",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrAssetNotFound = NewBaseError(
		http.StatusNotFound,
		"ASSET_NOT_FOUND",
		"Catalog asset not found",
		"",
	)

	// Authorization errors
	ErrNotDesignBuyer = NewBaseError(
		http.StatusForbidden,
		"NOT_DESIGN_BUYER",
		"Only the requesting customer may perform this action",
		"",
	)

	ErrNotAssignedBaker = NewBaseError(
		http.StatusForbidden,
		"NOT_ASSIGNED_BAKER",
		"This design request is handled by another baker",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// State errors
	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"The design request is not in a state that allows this change",
		"",
	)

	ErrDesignLocked = NewBaseError(
		http.StatusConflict,
		"DESIGN_LOCKED",
		"The design request has been converted to an order and can no longer change",
		"",
	)

	ErrDesignNotQuoted = NewBaseError(
		http.StatusConflict,
		"DESIGN_NOT_QUOTED",
		"The design request has no quote to respond to",
		"",
	)

	ErrDesignNotApproved = NewBaseError(
		http.StatusConflict,
		"DESIGN_NOT_APPROVED",
		"Only an approved design request can be ordered",
		"",
	)

	ErrEditAfterQuote = NewBaseError(
		http.StatusConflict,
		"EDIT_AFTER_QUOTE",
		"The design can no longer be edited once a baker is working on it",
		"",
	)

	// Input errors
	ErrQuoteRequiresPrice = NewBaseError(
		http.StatusBadRequest,
		"QUOTE_REQUIRES_PRICE",
		"A quote must include a positive final price",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Unknown design status",
		"",
	)

	ErrInvalidAssetType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ASSET_TYPE",
		"Unknown catalog asset type",
		"",
	)

	ErrUnderpayment = NewBaseError(
		http.StatusBadRequest,
		"UNDERPAYMENT",
		"Declared amount does not cover the required payment",
		"",
	)

	ErrProofOfPaymentRequired = NewBaseError(
		http.StatusBadRequest,
		"PROOF_OF_PAYMENT_REQUIRED",
		"Electronic payments require a proof of payment",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Conflict errors
	ErrDesignAlreadyClaimed = NewBaseError(
		http.StatusConflict,
		"DESIGN_ALREADY_CLAIMED",
		"Another baker has already claimed this design request",
		"",
	)

	ErrOrderConflict = NewBaseError(
		http.StatusConflict,
		"ORDER_CONFLICT",
		"An order for this design request already exists",
		"",
	)

	ErrDuplicateAsset = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_ASSET",
		"A catalog asset with this type and name already exists",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
