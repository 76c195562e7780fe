package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors. Handlers map these codes to HTTP statuses; services
// return them unwrapped so errors.As works across layers.
var (
	ErrNotFound          = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists     = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrValidationFailed  = NewDomainError("VALIDATION_FAILED", "Invalid input provided")
	ErrConflict          = NewDomainError("CONFLICT", "Resource was modified by another process")
	ErrInvalidState      = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientFunds = NewDomainError("INSUFFICIENT_FUNDS", "Insufficient balance available")
	ErrInternal          = NewDomainError("INTERNAL", "Internal service error")
)
