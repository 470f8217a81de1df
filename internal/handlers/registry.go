package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	ListingHandler *ListingHandler
	UploadHandler  *UploadHandler
}
