package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
	ValidationInvalidSort   ErrorCode = "VALIDATION_005"
	ValidationInvalidFilter ErrorCode = "VALIDATION_006"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound  ErrorCode = "ACCOUNT_001"
	AccountInvalidID ErrorCode = "ACCOUNT_002"
	AccountNoData    ErrorCode = "ACCOUNT_003"
)

// Upstream source error codes (SOURCE_*)
const (
	SourceUnavailable   ErrorCode = "SOURCE_001"
	SourceBadResponse   ErrorCode = "SOURCE_002"
	SourceFetchTimedOut ErrorCode = "SOURCE_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemDatabaseError     ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidSort:   "Invalid sort field or order",
	ValidationInvalidFilter: "Invalid filter value",

	// Account errors
	AccountNotFound:  "Account not found",
	AccountInvalidID: "Invalid account ID format",
	AccountNoData:    "No accounts are available",

	// Source errors
	SourceUnavailable:   "The account service is temporarily unavailable",
	SourceBadResponse:   "The account service returned an unexpected response",
	SourceFetchTimedOut: "The account service took too long to respond",

	// System errors
	SystemInternalError:     "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:     "Database connection error",
	SystemRateLimitExceeded: "Rate limit exceeded. Please try again later",
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
