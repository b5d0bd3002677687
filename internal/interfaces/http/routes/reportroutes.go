package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/estatedesk/estatedesk/internal/infrastructure/permission"
	reportHandlers "github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/report"
	"github.com/estatedesk/estatedesk/internal/interfaces/http/middleware"
)

type ReportRouteConfig struct {
	ReportHandler        *reportHandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupReportRoutes(engine *gin.Engine, config *ReportRouteConfig) {
	reports := engine.Group("/reports")
	reports.Use(
		config.AuthMiddleware.RequireAuth(),
		config.PermissionMiddleware.RequirePermission(permission.ResourceReports, permission.ActionRead),
	)
	{
		reports.GET("/tickets", config.ReportHandler.TicketKPIs)
		reports.GET("/job-card-costs", config.ReportHandler.JobCardCosts)
	}
}
