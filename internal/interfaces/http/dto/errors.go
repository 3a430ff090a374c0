package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
	// ErrCodeTosNotAccepted is used when a quote is accepted without the
	// terms of service box ticked
	ErrCodeTosNotAccepted = "ERR_TOS_NOT_ACCEPTED"
	// ErrCodeClientEmailRequired is used when invoicing a client with no email
	ErrCodeClientEmailRequired = "ERR_CLIENT_EMAIL_REQUIRED"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the caller lacks permission
	ErrCodeForbidden = "ERR_FORBIDDEN"
	// ErrCodeQuotaExhausted is used when an API key has no uses left
	ErrCodeQuotaExhausted = "ERR_QUOTA_EXHAUSTED"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeConcurrencyConflict is used when a conditional update loses a race
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
	// ErrCodeQuoteAlreadyDecided is used when deciding a non-pending quote
	ErrCodeQuoteAlreadyDecided = "ERR_QUOTE_ALREADY_DECIDED"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeBusinessRule is used for generic business rule violations
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
)

// Payment provider error codes
const (
	// ErrCodeProviderNotConfigured is used when no provider credentials exist
	ErrCodeProviderNotConfigured = "ERR_PROVIDER_NOT_CONFIGURED"
	// ErrCodeProviderFailure is used when a provider call fails
	ErrCodeProviderFailure = "ERR_PROVIDER_FAILURE"
)

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when the rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation:          http.StatusBadRequest,
	ErrCodeBadRequest:          http.StatusBadRequest,
	ErrCodeInvalidInput:        http.StatusBadRequest,
	ErrCodeInvalidJSON:         http.StatusBadRequest,
	ErrCodeTosNotAccepted:      http.StatusBadRequest,
	ErrCodeClientEmailRequired: http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,
	ErrCodeQuotaExhausted: http.StatusForbidden,

	// Resource errors
	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,
	ErrCodeQuoteAlreadyDecided: http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInvalidState: http.StatusUnprocessableEntity,
	ErrCodeBusinessRule: http.StatusUnprocessableEntity,

	// Provider errors
	ErrCodeProviderNotConfigured: http.StatusBadRequest,
	ErrCodeProviderFailure:       http.StatusBadGateway,

	// Rate limiting -> 429 Too Many Requests
	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to the wire format
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":                ErrCodeNotFound,
	"ALREADY_EXISTS":           ErrCodeAlreadyExists,
	"INVALID_INPUT":            ErrCodeInvalidInput,
	"INVALID_STATE":            ErrCodeInvalidState,
	"UNAUTHORIZED":             ErrCodeUnauthorized,
	"FORBIDDEN":                ErrCodeForbidden,
	"CONCURRENCY_CONFLICT":     ErrCodeConcurrencyConflict,
	"QUOTE_ALREADY_DECIDED":    ErrCodeQuoteAlreadyDecided,
	"TOS_NOT_ACCEPTED":         ErrCodeTosNotAccepted,
	"CLIENT_EMAIL_REQUIRED":    ErrCodeClientEmailRequired,
	"PROVIDER_NOT_CONFIGURED":  ErrCodeProviderNotConfigured,
	"PROVIDER_FAILURE":         ErrCodeProviderFailure,
	"QUOTA_EXHAUSTED":          ErrCodeQuotaExhausted,
	"INVALID_USERNAME":         ErrCodeValidation,
	"INVALID_EMAIL":            ErrCodeValidation,
	"INVALID_TITLE":            ErrCodeValidation,
	"INVALID_VALUE":            ErrCodeValidation,
	"INVALID_AMOUNT":           ErrCodeValidation,
	"INVALID_NAME":             ErrCodeValidation,
	"INVALID_PRICE":            ErrCodeValidation,
	"INVALID_DESCRIPTION":      ErrCodeValidation,
	"INVALID_STATUS":           ErrCodeValidation,
	"INVALID_PAYMENT_TERMS":    ErrCodeValidation,
	"INVALID_PERCENT":          ErrCodeValidation,
	"INVALID_FIELD":            ErrCodeValidation,
	"INVALID_DISPLAY_NAME":     ErrCodeValidation,
	"INVALID_CURRENCY_PREFIX":  ErrCodeValidation,
	"INVALID_INVOICE":          ErrCodeValidation,
	"INVALID_PROVIDER":         ErrCodeValidation,
	"INVALID_MESSAGE":          ErrCodeValidation,
	"BAD_REQUEST":              ErrCodeBadRequest,
	"INTERNAL_ERROR":           ErrCodeInternal,
}

// NormalizeErrorCode converts a domain error code to the wire format.
// If the code is already in the new format or unknown, returns it as-is.
func NormalizeErrorCode(code string) string {
	if wireCode, ok := DomainErrorCodeMapping[code]; ok {
		return wireCode
	}
	return code
}
