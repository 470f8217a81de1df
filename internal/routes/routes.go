package routes

import (
	"realty_backend/internal/handlers"
	"realty_backend/internal/logger"
	"realty_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты. Каждый маршрут проходит через Guard.
func RegisterRoutes(router gin.IRoutes, appHandlers *handlers.AppHandlers, guard *middleware.Guard) {
	Register(router, Table(appHandlers), guard)
}

// Register подключает маршруты из таблицы
func Register(router gin.IRoutes, table []Route, guard *middleware.Guard) {
	for _, route := range table {
		router.Handle(route.Method, route.Path, guard.Require(route.Roles...), route.Handler)
	}
	logger.Debug("HTTP routes registered", "count", len(table))
}
