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

// Common domain errors
var (
	ErrNotFound              = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists         = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput          = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState          = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrConcurrencyConflict   = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized          = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden             = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrQuoteAlreadyDecided   = NewDomainError("QUOTE_ALREADY_DECIDED", "This quote has already been accepted or rejected!")
	ErrProviderNotConfigured = NewDomainError("PROVIDER_NOT_CONFIGURED", "No payment provider credentials found")
	ErrProviderFailure       = NewDomainError("PROVIDER_FAILURE", "Payment provider request failed")
	ErrQuotaExhausted        = NewDomainError("QUOTA_EXHAUSTED", "You have no API uses left.")
)
