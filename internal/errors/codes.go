package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Customer error codes (CUSTOMER_*)
const (
	CustomerNotFound           ErrorCode = "CUSTOMER_001"
	CustomerInvalidID          ErrorCode = "CUSTOMER_002"
	CustomerServiceUnavailable ErrorCode = "CUSTOMER_003"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound      ErrorCode = "ACCOUNT_001"
	AccountInvalidNumber ErrorCode = "ACCOUNT_002"
	AccountInvalidID     ErrorCode = "ACCOUNT_003"
)

// Business rule error codes (BUSINESS_*)
const (
	BusinessRuleViolation ErrorCode = "BUSINESS_001"
)

// Concurrency error codes (CONFLICT_*)
const (
	ConflictVersionMismatch ErrorCode = "CONFLICT_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// Customer errors
	CustomerNotFound:           "Customer not found",
	CustomerInvalidID:          "Invalid customer ID format",
	CustomerServiceUnavailable: "Customer service is temporarily unavailable",

	// Account errors
	AccountNotFound:      "Account not found",
	AccountInvalidNumber: "Invalid account number format",
	AccountInvalidID:     "Invalid account ID format",

	// Business rule errors
	BusinessRuleViolation: "Account request violates a business rule",

	// Concurrency errors
	ConflictVersionMismatch: "Account was modified concurrently, please retry",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
