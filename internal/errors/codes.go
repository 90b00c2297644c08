package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// User error codes (USER_*)
const (
	UserNotFound      ErrorCode = "USER_001"
	UserEmailTaken    ErrorCode = "USER_002"
	UserUsernameTaken ErrorCode = "USER_003"
	UserInvalidID     ErrorCode = "USER_004"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
	CategoryNameRequired  ErrorCode = "CATEGORY_003"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound          ErrorCode = "TRANSACTION_001"
	TransactionInvalidType       ErrorCode = "TRANSACTION_002"
	TransactionNoValidUsers      ErrorCode = "TRANSACTION_003"
	TransactionNoValidCategories ErrorCode = "TRANSACTION_004"
	TransactionInvalidDate       ErrorCode = "TRANSACTION_005"
)

// Report error codes (REPORT_*)
const (
	ReportInvalidMonth ErrorCode = "REPORT_001"
	ReportInvalidDate  ErrorCode = "REPORT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemDatabaseError     ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials: "Invalid email or password",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidDate:   "Invalid date format or range",

	UserNotFound:      "User not found",
	UserEmailTaken:    "Email already exists",
	UserUsernameTaken: "Username already exists",
	UserInvalidID:     "Invalid user ID format",

	CategoryNotFound:      "Category not found",
	CategoryAlreadyExists: "Category already exists",
	CategoryNameRequired:  "Category name is required",

	TransactionNotFound:          "Transaction not found",
	TransactionInvalidType:       "Transaction type must be expense or revenue",
	TransactionNoValidUsers:      "No valid users found",
	TransactionNoValidCategories: "No valid categories found",
	TransactionInvalidDate:       "Date must use format YYYY-MM-DD HH:MM:SS",

	ReportInvalidMonth: "Month must use format YYYY-MM",
	ReportInvalidDate:  "Date must use format YYYY-MM-DD",

	SystemInternalError:     "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:     "Database connection error",
	SystemRateLimitExceeded: "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code.
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
