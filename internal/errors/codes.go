package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthRequired           ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthOwnerMismatch      ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidWindow ErrorCode = "VALIDATION_004"
	ValidationDualInput     ErrorCode = "VALIDATION_005"
)

// Capture device error codes (DEVICE_*)
const (
	DevicePermissionDenied ErrorCode = "DEVICE_001"
	DeviceNotFound         ErrorCode = "DEVICE_002"
	DeviceBusy             ErrorCode = "DEVICE_003"
)

// Parse request error codes (PARSE_*)
const (
	ParseRequestFailed  ErrorCode = "PARSE_001"
	ParseMalformedBody  ErrorCode = "PARSE_002"
	ParseServiceDenied  ErrorCode = "PARSE_003"
	ParseEmptyUtterance ErrorCode = "PARSE_004"
)

// Expense persistence error codes (EXPENSE_*)
const (
	ExpenseNotFound     ErrorCode = "EXPENSE_001"
	ExpenseSaveFailed   ErrorCode = "EXPENSE_002"
	ExpenseDeleteFailed ErrorCode = "EXPENSE_003"
	ExpenseQueryFailed  ErrorCode = "EXPENSE_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthRequired:           "Sign in to record or view expenses",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthOwnerMismatch:      "Expense belongs to another user",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidWindow: "Time window must be 7, 30, 90 or all",
	ValidationDualInput:     "Provide either text or audio, not both",

	// Capture device errors
	DevicePermissionDenied: "Microphone access was denied",
	DeviceNotFound:         "No microphone device is available",
	DeviceBusy:             "Microphone is already in use by another capture session",

	// Parse request errors
	ParseRequestFailed:  "Failed to process expense",
	ParseMalformedBody:  "Parser returned an unreadable response",
	ParseServiceDenied:  "Parser rejected the request",
	ParseEmptyUtterance: "Nothing to parse: the utterance is empty",

	// Expense errors
	ExpenseNotFound:     "Expense not found",
	ExpenseSaveFailed:   "Failed to save expense",
	ExpenseDeleteFailed: "Failed to delete expense",
	ExpenseQueryFailed:  "Failed to fetch expenses",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
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
