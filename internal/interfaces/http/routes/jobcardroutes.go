package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/estatedesk/estatedesk/internal/infrastructure/permission"
	jobcardHandlers "github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/jobcard"
	"github.com/estatedesk/estatedesk/internal/interfaces/http/middleware"
)

type JobCardRouteConfig struct {
	JobCardHandler       *jobcardHandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupJobCardRoutes(engine *gin.Engine, config *JobCardRouteConfig) {
	perm := config.PermissionMiddleware
	read := perm.RequirePermission(permission.ResourceJobCards, permission.ActionRead)
	write := perm.RequirePermission(permission.ResourceJobCards, permission.ActionWrite)
	signoff := perm.RequirePermission(permission.ResourceJobCards, permission.ActionSignOff)
	h := config.JobCardHandler

	cards := engine.Group("/job-cards")
	cards.Use(config.AuthMiddleware.RequireAuth())
	{
		cards.POST("", write, h.Create)
		cards.GET("", read, h.List)

		cards.PUT("/:id/costs", write, h.UpdateCosts)
		cards.PATCH("/:id/status", write, h.ChangeStatus)
		cards.POST("/:id/media", write, h.UploadMedia)
		cards.GET("/:id/media/:mediaId", read, h.DownloadMedia)
		cards.GET("/:id/signoffs", read, h.ListSignoffs)
		cards.POST("/:id/signoffs", signoff, h.SignOff)
		cards.POST("/:id/public-link", write, h.PublicLink)

		cards.GET("/:id", read, h.Get)
		cards.PATCH("/:id", write, h.Update)
	}
}
