package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	cause   error
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Common errors
var (
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrTooManyRequest = &AppError{Code: http.StatusTooManyRequests, Message: "Too many requests, please try again later"}
)

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewInvalidFiltersError reports a malformed filter payload
func NewInvalidFiltersError(cause error) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Invalid filters",
		Errors:  []FieldError{{Field: "filters", Message: cause.Error()}},
		cause:   cause,
	}
}

// NewUnsupportedCategoryError reports a document category the party type does not track
func NewUnsupportedCategoryError(category string, cause error) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Unsupported category: " + category,
		cause:   cause,
	}
}

// NewUnsupportedPartyTypeError reports a party type with no registered pipeline
func NewUnsupportedPartyTypeError(partyType string, cause error) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Unsupported party type: " + partyType,
		cause:   cause,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible.
// Unknown errors become a generic 500 so store details never reach the client.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: ErrInternalServer.Message,
		cause:   err,
	}
}
