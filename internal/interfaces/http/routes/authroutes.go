package routes

import (
	"github.com/gin-gonic/gin"

	adminHandlers "github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/admin"
	"github.com/estatedesk/estatedesk/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *adminHandlers.AuthHandler
	AdminHandler   *adminHandlers.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AdminHandler.Me)
	}
}
