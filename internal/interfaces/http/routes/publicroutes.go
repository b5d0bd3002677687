package routes

import (
	"github.com/gin-gonic/gin"

	publicHandlers "github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/public"
	webhookHandlers "github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/webhook"
	"github.com/estatedesk/estatedesk/internal/interfaces/http/middleware"
)

// PublicRouteConfig holds dependencies for unauthenticated routes.
type PublicRouteConfig struct {
	PublicHandler   *publicHandlers.Handler
	WhatsAppHandler *webhookHandlers.WhatsAppHandler
}

// SetupPublicRoutes configures the job card viewer and the WhatsApp webhook.
// Neither route uses staff auth.
func SetupPublicRoutes(engine *gin.Engine, config *PublicRouteConfig) {
	public := engine.Group("/public/job-cards")
	public.Use(middleware.SecurityHeaders())
	{
		public.GET("/view", config.PublicHandler.View)
		public.POST("/verify", config.PublicHandler.Verify)
	}

	webhooks := engine.Group("/webhooks")
	{
		webhooks.GET("/whatsapp", config.WhatsAppHandler.Verify)
		webhooks.POST("/whatsapp", config.WhatsAppHandler.Receive)
	}
}
