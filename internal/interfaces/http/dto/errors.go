package dto

import "net/http"

// Error codes shared between the domain layer and the API surface
const (
	ErrCodeBadRequest        = "BAD_REQUEST"
	ErrCodeValidation        = "VALIDATION_FAILED"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeAlreadyExists     = "ALREADY_EXISTS"
	ErrCodeConflict          = "CONFLICT"
	ErrCodeInvalidState      = "INVALID_STATE"
	ErrCodeInsufficientFunds = "INSUFFICIENT_FUNDS"
	ErrCodeNumberExhausted   = "NUMBER_EXHAUSTED"
	ErrCodeInternal          = "INTERNAL"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:        http.StatusBadRequest,
	ErrCodeValidation:        http.StatusBadRequest,
	ErrCodeNotFound:          http.StatusNotFound,
	ErrCodeAlreadyExists:     http.StatusConflict,
	ErrCodeConflict:          http.StatusConflict,
	ErrCodeInvalidState:      http.StatusUnprocessableEntity,
	ErrCodeInsufficientFunds: http.StatusUnprocessableEntity,
	ErrCodeNumberExhausted:   http.StatusConflict,
	ErrCodeInternal:          http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting to 500
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
