package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/estatedesk/estatedesk/internal/infrastructure/permission"
	ticketHandlers "github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/ticket"
	"github.com/estatedesk/estatedesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *ticketHandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	read := config.PermissionMiddleware.RequirePermission(permission.ResourceTickets, permission.ActionRead)
	write := config.PermissionMiddleware.RequirePermission(permission.ResourceTickets, permission.ActionWrite)
	h := config.TicketHandler

	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", write, h.Create)
		tickets.GET("", read, h.List)

		tickets.GET("/:id/history", read, h.History)
		tickets.GET("/:id/media", read, h.ListMedia)
		tickets.GET("/:id/media/:mediaId", read, h.DownloadMedia)
		tickets.POST("/:id/media", write, h.UploadMedia)
		tickets.POST("/:id/updates", write, h.AddUpdate)
		tickets.PATCH("/:id/status", write, h.ChangeStatus)
		tickets.POST("/:id/reassign", write, h.Reassign)
		tickets.POST("/:id/read", read, h.MarkRead)
		tickets.PUT("/:id/due-date", write, h.SetDueDate)
		tickets.POST("/:id/job-card", write, h.EnsureJobCard)

		tickets.GET("/:id", read, h.Get)
	}
}
