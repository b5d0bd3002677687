package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/estatedesk/estatedesk/internal/infrastructure/permission"
	adminHandlers "github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/admin"
	"github.com/estatedesk/estatedesk/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for staff and settings management.
type AdminRouteConfig struct {
	AdminHandler         *adminHandlers.AdminHandler
	SettingHandler       *adminHandlers.SettingHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures /admins and /settings.
func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	perm := config.PermissionMiddleware

	admins := engine.Group("/admins")
	admins.Use(config.AuthMiddleware.RequireAuth())
	{
		read := perm.RequirePermission(permission.ResourceAdmins, permission.ActionRead)
		write := perm.RequirePermission(permission.ResourceAdmins, permission.ActionWrite)

		admins.POST("", write, config.AdminHandler.Create)
		admins.GET("", read, config.AdminHandler.List)
		admins.GET("/:id", read, config.AdminHandler.Get)
		admins.PUT("/:id", write, config.AdminHandler.Update)
		admins.DELETE("/:id", write, config.AdminHandler.Delete)
	}

	settings := engine.Group("/settings")
	settings.Use(config.AuthMiddleware.RequireAuth())
	{
		settings.GET("/:category",
			perm.RequirePermission(permission.ResourceSettings, permission.ActionRead),
			config.SettingHandler.GetCategorySettings)
		settings.PUT("/:category",
			perm.RequirePermission(permission.ResourceSettings, permission.ActionWrite),
			config.SettingHandler.UpdateCategorySettings)
	}
}
