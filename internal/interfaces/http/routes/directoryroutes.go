package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/estatedesk/estatedesk/internal/infrastructure/permission"
	propertyHandlers "github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/property"
	tenantHandlers "github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/tenant"
	"github.com/estatedesk/estatedesk/internal/interfaces/http/middleware"
)

// DirectoryRouteConfig holds dependencies for property and tenant routes.
type DirectoryRouteConfig struct {
	PropertyHandler      *propertyHandlers.Handler
	TenantHandler        *tenantHandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupDirectoryRoutes configures /properties and /tenants.
func SetupDirectoryRoutes(engine *gin.Engine, config *DirectoryRouteConfig) {
	perm := config.PermissionMiddleware

	properties := engine.Group("/properties")
	properties.Use(config.AuthMiddleware.RequireAuth())
	{
		read := perm.RequirePermission(permission.ResourceProperties, permission.ActionRead)
		write := perm.RequirePermission(permission.ResourceProperties, permission.ActionWrite)

		properties.POST("", write, config.PropertyHandler.Create)
		properties.GET("", read, config.PropertyHandler.List)
		properties.GET("/:id", read, config.PropertyHandler.Get)
		properties.PUT("/:id", write, config.PropertyHandler.Update)
	}

	tenants := engine.Group("/tenants")
	tenants.Use(config.AuthMiddleware.RequireAuth())
	{
		read := perm.RequirePermission(permission.ResourceTenants, permission.ActionRead)
		write := perm.RequirePermission(permission.ResourceTenants, permission.ActionWrite)

		tenants.POST("", write, config.TenantHandler.Register)
		tenants.GET("", read, config.TenantHandler.List)
		tenants.GET("/:id", read, config.TenantHandler.Get)
		tenants.PUT("/:id", write, config.TenantHandler.Update)
		tenants.DELETE("/:id", write, config.TenantHandler.Delete)
	}
}
