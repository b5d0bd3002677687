package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/estatedesk/estatedesk/docs"
	"github.com/estatedesk/estatedesk/internal/infrastructure/config"
	"github.com/estatedesk/estatedesk/internal/interfaces/http/middleware"
	"github.com/estatedesk/estatedesk/internal/interfaces/http/routes"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
	"github.com/estatedesk/estatedesk/internal/shared/utils"
)

// Router represents the HTTP router configuration
type Router struct {
	container *Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(ctx context.Context, cfg *config.Config, db *gorm.DB, log logger.Interface) (*Router, error) {
	c, err := NewContainer(ctx, cfg, db, log)
	if err != nil {
		return nil, err
	}
	return &Router{container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	c := r.container
	engine := c.engine

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(c.log.Named("http")))
	engine.Use(middleware.Recovery(c.log))
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	engine.GET("/health", r.health)
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h := c.hdlrs
	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    h.authHandler,
		AdminHandler:   h.adminHandler,
		AuthMiddleware: c.authMiddleware,
		RateLimiter:    c.loginRateLimiter,
	})
	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		AdminHandler:         h.adminHandler,
		SettingHandler:       h.settingHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupDirectoryRoutes(engine, &routes.DirectoryRouteConfig{
		PropertyHandler:      h.propertyHandler,
		TenantHandler:        h.tenantHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:        h.ticketHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupJobCardRoutes(engine, &routes.JobCardRouteConfig{
		JobCardHandler:       h.jobCardHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupReportRoutes(engine, &routes.ReportRouteConfig{
		ReportHandler:        h.reportHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupPublicRoutes(engine, &routes.PublicRouteConfig{
		PublicHandler:   h.publicHandler,
		WhatsAppHandler: h.whatsAppHandler,
	})
}

func (r *Router) health(c *gin.Context) {
	sqlDB, err := r.container.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "ok", nil)
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.container.Engine()
}

// Shutdown releases background resources held by the router.
func (r *Router) Shutdown() {
	r.container.Shutdown()
}
