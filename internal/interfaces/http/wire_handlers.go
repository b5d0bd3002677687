package http

import (
	adminHandlers "github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/admin"
	jobcardHandlers "github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/jobcard"
	propertyHandlers "github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/property"
	publicHandlers "github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/public"
	reportHandlers "github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/report"
	tenantHandlers "github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/tenant"
	ticketHandlers "github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/ticket"
	webhookHandlers "github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/webhook"
	"github.com/estatedesk/estatedesk/internal/shared/services/markdown"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	// Admin & Auth
	authHandler    *adminHandlers.AuthHandler
	adminHandler   *adminHandlers.AdminHandler
	settingHandler *adminHandlers.SettingHandler

	// Directory
	propertyHandler *propertyHandlers.Handler
	tenantHandler   *tenantHandlers.Handler

	// Work
	ticketHandler  *ticketHandlers.Handler
	jobCardHandler *jobcardHandlers.Handler
	reportHandler  *reportHandlers.Handler

	// Unauthenticated surfaces
	publicHandler   *publicHandlers.Handler
	whatsAppHandler *webhookHandlers.WhatsAppHandler
}

func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log

	c.hdlrs = &allHandlers{
		authHandler: adminHandlers.NewAuthHandler(u.login, log),
		adminHandler: adminHandlers.NewAdminHandler(
			u.createAdmin, u.updateAdmin, u.deleteAdmin, u.getAdmin, u.listAdmins, log,
		),
		settingHandler: adminHandlers.NewSettingHandler(u.getSettings, u.updateSettings, log),

		propertyHandler: propertyHandlers.NewHandler(
			u.createProperty, u.updateProperty, u.listProperties, u.getProperty, log,
		),
		tenantHandler: tenantHandlers.NewHandler(tenantHandlers.UseCases{
			Register: u.registerTenant,
			Update:   u.updateTenant,
			Delete:   u.deleteTenant,
			Get:      u.getTenant,
			List:     u.listTenants,
		}, log),

		ticketHandler: ticketHandlers.NewHandler(ticketHandlers.UseCases{
			Create:        u.createTicket,
			List:          u.listTickets,
			Get:           u.getTicket,
			History:       u.getHistory,
			ChangeStatus:  u.changeTicketStatus,
			Reassign:      u.reassignTicket,
			AddUpdate:     u.addUpdate,
			MarkRead:      u.markRead,
			SetDueDate:    u.setDueDate,
			AddMedia:      u.addTicketMedia,
			ListMedia:     u.listTicketMedia,
			EnsureJobCard: u.ensureJobCard,
			GetAdmin:      u.getAdmin,
		}, log),
		jobCardHandler: jobcardHandlers.NewHandler(jobcardHandlers.UseCases{
			Create:       u.createJobCard,
			List:         u.listJobCards,
			Get:          u.getJobCard,
			UpdateFields: u.updateJobCardFields,
			UpdateCosts:  u.updateJobCardCosts,
			ChangeStatus: u.changeJobCardStatus,
			AddMedia:     u.addJobCardMedia,
			GetMedia:     u.getJobCardMedia,
			SignOff:      u.signOff,
			ListSignoffs: u.listSignoffs,
			PublicToken:  u.ensurePublicToken,
			Links:        u.settingProvider,
		}, log),
		reportHandler: reportHandlers.NewHandler(u.ticketKPIs, u.jobCardCosts, log),

		publicHandler: publicHandlers.NewHandler(
			u.publicView, u.verifyPIN, c.limiter, c.cfg.Business.PINAttemptsPerHour,
			markdown.NewRenderer(), log.Named("public"),
		),
		whatsAppHandler: webhookHandlers.NewWhatsAppHandler(
			c.cfg.WhatsApp.VerifyToken, c.cfg.WhatsApp.AppSecret, u.intake, log.Named("webhook"),
		),
	}
}
