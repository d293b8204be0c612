package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral          ErrorCode = "VALIDATION_001"
	ValidationRequiredField    ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat    ErrorCode = "VALIDATION_003"
	ValidationOutOfRange       ErrorCode = "VALIDATION_004"
	ValidationInvalidDate      ErrorCode = "VALIDATION_005"
	ValidationInvalidKey       ErrorCode = "VALIDATION_006"
	ValidationInvalidDirection ErrorCode = "VALIDATION_007"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound       ErrorCode = "ACCOUNT_001"
	AccountAlreadyExists  ErrorCode = "ACCOUNT_002"
	AccountInvalidBalance ErrorCode = "ACCOUNT_003"
	AccountMissingFields  ErrorCode = "ACCOUNT_004"
)

// Transfer error codes (TRANSFER_*)
const (
	TransferSameAccount        ErrorCode = "TRANSFER_001"
	TransferMissingSource      ErrorCode = "TRANSFER_002"
	TransferMissingDestination ErrorCode = "TRANSFER_003"
	TransferNotFound           ErrorCode = "TRANSFER_004"
	TransferInvalidAmount      ErrorCode = "TRANSFER_005"
	TransferDuplicate          ErrorCode = "TRANSFER_006"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:          "Validation failed",
	ValidationRequiredField:    "Required field is missing",
	ValidationInvalidFormat:    "Invalid field format",
	ValidationOutOfRange:       "Field value is out of allowed range",
	ValidationInvalidDate:      "Invalid date format or range",
	ValidationInvalidKey:       "Invalid account selection key",
	ValidationInvalidDirection: "Direction must be one of all, in, out",

	// Account errors
	AccountNotFound:       "Account not found",
	AccountAlreadyExists:  "An account with this identifier already exists",
	AccountInvalidBalance: "Balance must be a valid non-negative number",
	AccountMissingFields:  "Please fill Name, Bank, and Account Number",

	// Transfer errors
	TransferSameAccount:        "From and To accounts cannot be the same",
	TransferMissingSource:      "Please select a From account",
	TransferMissingDestination: "Please select a To account",
	TransferNotFound:           "Transfer not found",
	TransferInvalidAmount:      "Amount must be a number greater than 0",
	TransferDuplicate:          "A transfer with this transfer ID already exists",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
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
