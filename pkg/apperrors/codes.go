package apperrors

// ErrorCode - машиночитаемый код ошибки в ответе API
type ErrorCode string

// Общие коды
const (
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeLimitExceeded    ErrorCode = "LIMIT_EXCEEDED"

	// Аутентификация и авторизация
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidProductKey  ErrorCode = "INVALID_PRODUCT_KEY"
	CodeNotListingOwner    ErrorCode = "NOT_LISTING_OWNER"

	// Пользователи
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodeUnknownEmail       ErrorCode = "USER_NOT_FOUND_CONFLICT"

	// Объявления
	CodeListingNotFound ErrorCode = "LISTING_NOT_FOUND"
	CodeInvalidFileType ErrorCode = "INVALID_FILE_TYPE"
)
