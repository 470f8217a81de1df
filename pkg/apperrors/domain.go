package apperrors

import (
	"net/http"
)

// Предопределенные ошибки бизнес-логики. Таксономия:
// Unauthorized (401), Conflict (409), BadRequest (400), NotFound (404).

// --- Auth ---

// ErrUnauthorized - единый ответ guard'а. Причина отказа наружу не выдается.
var ErrUnauthorized = New(CodeUnauthorized, "auth", "Unauthorized", http.StatusUnauthorized)

var ErrInvalidProductKey = New(CodeInvalidProductKey, "auth", "Missing or invalid product key", http.StatusUnauthorized)

// ErrInvalidCredentials - неверный пароль при входе. Клиенты ожидают 400, а не 401.
var ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid credential", http.StatusBadRequest)

// --- Users ---

var ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "user", "Email in use", http.StatusConflict)

// ErrUnknownEmail - вход с незарегистрированным email отдается как конфликт
var ErrUnknownEmail = New(CodeUnknownEmail, "user", "No account registered for this email", http.StatusConflict)

var ErrUserNotFound = New(CodeUserNotFound, "user", "User not found", http.StatusNotFound)

// --- Listings ---

var ErrListingNotFound = New(CodeListingNotFound, "listing", "Listing not found", http.StatusNotFound)

// ErrNoListingsFound - пустой результат поиска считается ошибкой
var ErrNoListingsFound = New(CodeListingNotFound, "listing", "No listings match the given filters", http.StatusNotFound)

var ErrNotListingOwner = New(CodeNotListingOwner, "listing", "Only the listing's realtor can do this", http.StatusUnauthorized)

// --- Uploads ---

var ErrFileTooLarge = New(CodeLimitExceeded, "upload", "File size exceeds the allowed limit", http.StatusRequestEntityTooLarge)

var ErrInvalidFileType = New(CodeInvalidFileType, "upload", "The provided file type is not allowed", http.StatusUnsupportedMediaType)
