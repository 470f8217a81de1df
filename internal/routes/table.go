package routes

import (
	"net/http"

	"realty_backend/internal/handlers"
	"realty_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// Route - маршрут и набор ролей, которым он доступен.
// Пустой Roles - открытый маршрут.
type Route struct {
	Method  string
	Path    string
	Roles   []models.UserRole
	Handler gin.HandlerFunc
}

var (
	privileged = []models.UserRole{models.UserRoleRealtor, models.UserRoleAdmin}
	buyerOnly  = []models.UserRole{models.UserRoleBuyer}
)

// Table - полный список API маршрутов.
// Проверка владения объявлением выполняется в сервисе, здесь только роли.
func Table(h *handlers.AppHandlers) []Route {
	return []Route{
		// Auth
		{Method: http.MethodPost, Path: "/auth/signup/:userType", Handler: h.AuthHandler.Signup},
		{Method: http.MethodPost, Path: "/auth/signin", Handler: h.AuthHandler.Signin},
		{Method: http.MethodPost, Path: "/auth/key", Handler: h.AuthHandler.GenerateProductKey},
		{Method: http.MethodGet, Path: "/auth/me", Roles: models.AllUserRoles, Handler: h.AuthHandler.Me},

		// Homes
		{Method: http.MethodGet, Path: "/home", Handler: h.ListingHandler.SearchListings},
		{Method: http.MethodGet, Path: "/home/:id", Handler: h.ListingHandler.GetListing},
		{Method: http.MethodPost, Path: "/home", Roles: privileged, Handler: h.ListingHandler.CreateListing},
		{Method: http.MethodPut, Path: "/home/:id", Roles: models.AllUserRoles, Handler: h.ListingHandler.UpdateListing},
		{Method: http.MethodDelete, Path: "/home/:id", Roles: privileged, Handler: h.ListingHandler.DeleteListing},
		{Method: http.MethodPost, Path: "/home/inquire/:id", Roles: buyerOnly, Handler: h.ListingHandler.SendInquiry},
		{Method: http.MethodGet, Path: "/home/:id/messages", Roles: privileged, Handler: h.ListingHandler.GetMessages},
		{Method: http.MethodPost, Path: "/home/images", Roles: privileged, Handler: h.UploadHandler.UploadListingImage},
	}
}
