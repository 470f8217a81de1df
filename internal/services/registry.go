package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	ListingService      ListingService
	UploadService       UploadService
	NotificationService NotificationService
}
