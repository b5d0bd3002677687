package http

import (
	"time"

	adminUsecases "github.com/estatedesk/estatedesk/internal/application/admin/usecases"
	"github.com/estatedesk/estatedesk/internal/application/intake"
	jobcardUsecases "github.com/estatedesk/estatedesk/internal/application/jobcard/usecases"
	"github.com/estatedesk/estatedesk/internal/application/notification"
	propertyUsecases "github.com/estatedesk/estatedesk/internal/application/property/usecases"
	reportUsecases "github.com/estatedesk/estatedesk/internal/application/report/usecases"
	settingUsecases "github.com/estatedesk/estatedesk/internal/application/setting/usecases"
	tenantUsecases "github.com/estatedesk/estatedesk/internal/application/tenant/usecases"
	ticketUsecases "github.com/estatedesk/estatedesk/internal/application/ticket/usecases"
	"github.com/estatedesk/estatedesk/internal/shared/db"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Admin & Auth
	login       *adminUsecases.LoginUseCase
	createAdmin *adminUsecases.CreateAdminUseCase
	updateAdmin *adminUsecases.UpdateAdminUseCase
	deleteAdmin *adminUsecases.DeleteAdminUseCase
	getAdmin    *adminUsecases.GetAdminUseCase
	listAdmins  *adminUsecases.ListAdminsUseCase

	// Settings
	settingProvider *settingUsecases.Provider
	getSettings     *settingUsecases.GetSettingsUseCase
	updateSettings  *settingUsecases.UpdateSettingsUseCase

	// Properties & Tenants
	createProperty *propertyUsecases.CreatePropertyUseCase
	updateProperty *propertyUsecases.UpdatePropertyUseCase
	listProperties *propertyUsecases.ListPropertiesUseCase
	getProperty    *propertyUsecases.GetPropertyUseCase
	registerTenant *tenantUsecases.RegisterTenantUseCase
	updateTenant   *tenantUsecases.UpdateTenantUseCase
	deleteTenant   *tenantUsecases.DeleteTenantUseCase
	getTenant      *tenantUsecases.GetTenantUseCase
	listTenants    *tenantUsecases.ListTenantsUseCase

	// Job cards
	adminNames          *ticketUsecases.AdminNameResolver
	createJobCard       *jobcardUsecases.CreateStandaloneUseCase
	listJobCards        *jobcardUsecases.ListJobCardsUseCase
	getJobCard          *jobcardUsecases.GetJobCardUseCase
	updateJobCardFields *jobcardUsecases.UpdateFieldsUseCase
	updateJobCardCosts  *jobcardUsecases.UpdateCostsUseCase
	changeJobCardStatus *jobcardUsecases.ChangeStatusUseCase
	addJobCardMedia     *jobcardUsecases.AddMediaUseCase
	getJobCardMedia     *jobcardUsecases.GetMediaUseCase
	signOff             *jobcardUsecases.SignOffUseCase
	listSignoffs        *jobcardUsecases.ListSignoffsUseCase
	ensureJobCard       *jobcardUsecases.EnsureForTicketUseCase
	ensurePublicToken   *jobcardUsecases.EnsurePublicTokenUseCase
	publicView          *jobcardUsecases.GetPublicViewUseCase
	verifyPIN           *jobcardUsecases.VerifyPINUseCase

	// Tickets
	createTicket       *ticketUsecases.CreateTicketUseCase
	listTickets        *ticketUsecases.ListTicketsUseCase
	getTicket          *ticketUsecases.GetTicketUseCase
	getHistory         *ticketUsecases.GetHistoryUseCase
	changeTicketStatus *ticketUsecases.ChangeStatusUseCase
	reassignTicket     *ticketUsecases.ReassignTicketUseCase
	addUpdate          *ticketUsecases.AddUpdateUseCase
	markRead           *ticketUsecases.MarkReadUseCase
	setDueDate         *ticketUsecases.SetDueDateUseCase
	addTicketMedia     *ticketUsecases.AddMediaUseCase
	listTicketMedia    *ticketUsecases.ListMediaUseCase

	// Reports
	ticketKPIs   *reportUsecases.TicketKPIsUseCase
	jobCardCosts *reportUsecases.JobCardCostsUseCase

	// WhatsApp intake
	notifier *notification.Notifier
	intake   *intake.Service
}

// initUseCases builds use cases bottom-up. Infrastructure services must be
// initialised first.
func (c *Container) initUseCases() {
	r := c.repos
	log := c.log
	txMgr := db.NewTransactionManager(c.db)
	u := &allUseCases{}
	c.ucs = u

	// Admin & Auth
	u.login = adminUsecases.NewLoginUseCase(r.adminRepo, c.hasher, c.jwtSvc, log.Named("login"))
	u.createAdmin = adminUsecases.NewCreateAdminUseCase(r.adminRepo, c.hasher, log)
	u.updateAdmin = adminUsecases.NewUpdateAdminUseCase(r.adminRepo, c.hasher, log)
	u.deleteAdmin = adminUsecases.NewDeleteAdminUseCase(r.adminRepo, log)
	u.getAdmin = adminUsecases.NewGetAdminUseCase(r.adminRepo, log)
	u.listAdmins = adminUsecases.NewListAdminsUseCase(r.adminRepo, log)

	// Settings
	u.settingProvider = settingUsecases.NewProvider(r.settingRepo, c.cfg.Business.PublicBaseURL, log.Named("settings"))
	u.getSettings = settingUsecases.NewGetSettingsUseCase(r.settingRepo, log)
	u.updateSettings = settingUsecases.NewUpdateSettingsUseCase(r.settingRepo, u.settingProvider, log)

	// Properties & Tenants
	u.createProperty = propertyUsecases.NewCreatePropertyUseCase(r.propertyRepo, r.adminRepo, log)
	u.updateProperty = propertyUsecases.NewUpdatePropertyUseCase(r.propertyRepo, r.adminRepo, log)
	u.listProperties = propertyUsecases.NewListPropertiesUseCase(r.propertyRepo, log)
	u.getProperty = propertyUsecases.NewGetPropertyUseCase(r.propertyRepo, log)
	u.registerTenant = tenantUsecases.NewRegisterTenantUseCase(r.tenantRepo, r.propertyRepo, log)
	u.updateTenant = tenantUsecases.NewUpdateTenantUseCase(r.tenantRepo, r.propertyRepo, log)
	u.deleteTenant = tenantUsecases.NewDeleteTenantUseCase(r.tenantRepo, r.ticketRepo, log)
	u.getTenant = tenantUsecases.NewGetTenantUseCase(r.tenantRepo, log)
	u.listTenants = tenantUsecases.NewListTenantsUseCase(r.tenantRepo, log)

	// Job cards
	u.adminNames = ticketUsecases.NewAdminNameResolver(r.adminRepo, log)
	u.createJobCard = jobcardUsecases.NewCreateStandaloneUseCase(r.jobCardRepo, log)
	u.listJobCards = jobcardUsecases.NewListJobCardsUseCase(r.jobCardRepo, log)
	u.getJobCard = jobcardUsecases.NewGetJobCardUseCase(r.jobCardRepo, r.jobCardMediaRepo, r.signoffRepo, log)
	u.updateJobCardFields = jobcardUsecases.NewUpdateFieldsUseCase(r.jobCardRepo, txMgr, log)
	u.updateJobCardCosts = jobcardUsecases.NewUpdateCostsUseCase(r.jobCardRepo, txMgr, log)
	u.changeJobCardStatus = jobcardUsecases.NewChangeStatusUseCase(r.jobCardRepo, txMgr, log)
	u.addJobCardMedia = jobcardUsecases.NewAddMediaUseCase(r.jobCardRepo, r.jobCardMediaRepo, log)
	u.getJobCardMedia = jobcardUsecases.NewGetMediaUseCase(r.jobCardMediaRepo, log)
	u.signOff = jobcardUsecases.NewSignOffUseCase(
		r.jobCardRepo, r.signoffRepo, r.propertyRepo, r.adminRepo, c.mailer, txMgr, log.Named("signoff"),
	)
	u.listSignoffs = jobcardUsecases.NewListSignoffsUseCase(r.signoffRepo, log)
	u.ensureJobCard = jobcardUsecases.NewEnsureForTicketUseCase(
		r.jobCardRepo, r.jobCardMediaRepo,
		r.ticketRepo, r.updateRepo, r.reassignmentRepo, r.ticketMediaRepo,
		r.tenantRepo, u.adminNames, txMgr, log,
	)
	u.ensurePublicToken = jobcardUsecases.NewEnsurePublicTokenUseCase(r.jobCardRepo, log)
	u.publicView = jobcardUsecases.NewGetPublicViewUseCase(r.jobCardRepo, r.signoffRepo, r.propertyRepo, log)
	u.verifyPIN = jobcardUsecases.NewVerifyPINUseCase(r.jobCardRepo, r.ticketRepo, r.tenantRepo, log.Named("public"))
	provisioner := jobcardUsecases.NewProvisioner(u.ensureJobCard, u.ensurePublicToken)

	// Tickets
	templates := c.cfg.WhatsApp.Templates
	u.notifier = notification.NewNotifier(c.whatsapp, notification.Templates{
		StatusUpdate:   templates.StatusUpdate,
		TicketUpdate:   templates.TicketUpdate,
		TicketAssigned: templates.TicketAssigned,
		JobCardLink:    templates.JobCardLink,
	}, time.Duration(c.cfg.WhatsApp.TimeoutSeconds)*time.Second, log.Named("notifier"))

	u.createTicket = ticketUsecases.NewCreateTicketUseCase(r.ticketRepo, r.tenantRepo, r.propertyRepo, log)
	u.listTickets = ticketUsecases.NewListTicketsUseCase(r.ticketRepo, log)
	u.getTicket = ticketUsecases.NewGetTicketUseCase(r.ticketRepo, log)
	u.getHistory = ticketUsecases.NewGetHistoryUseCase(r.ticketRepo, r.updateRepo, r.reassignmentRepo, u.adminNames, log)
	u.changeTicketStatus = ticketUsecases.NewChangeStatusUseCase(
		r.ticketRepo, r.tenantRepo, provisioner, u.settingProvider, u.notifier, txMgr, log,
	)
	u.reassignTicket = ticketUsecases.NewReassignTicketUseCase(
		r.ticketRepo, r.reassignmentRepo, r.adminRepo, u.notifier, txMgr, c.cfg.Business.ReassignLimit, log,
	)
	u.addUpdate = ticketUsecases.NewAddUpdateUseCase(r.ticketRepo, r.updateRepo, r.tenantRepo, u.notifier, log)
	u.markRead = ticketUsecases.NewMarkReadUseCase(r.ticketRepo, log)
	u.setDueDate = ticketUsecases.NewSetDueDateUseCase(r.ticketRepo, log)
	u.addTicketMedia = ticketUsecases.NewAddMediaUseCase(r.ticketRepo, r.ticketMediaRepo, log)
	u.listTicketMedia = ticketUsecases.NewListMediaUseCase(r.ticketMediaRepo, log)

	// Reports
	u.ticketKPIs = reportUsecases.NewTicketKPIsUseCase(r.reportRepo, r.propertyRepo, r.adminRepo, log)
	u.jobCardCosts = reportUsecases.NewJobCardCostsUseCase(r.reportRepo, r.propertyRepo, log)

	// WhatsApp intake
	business := c.cfg.Business
	u.intake = intake.NewService(
		r.tenantRepo, r.propertyRepo, r.adminRepo,
		u.createTicket, u.addTicketMedia, u.registerTenant,
		u.notifier, c.whatsapp, c.intakeStore,
		intake.Config{
			DuplicateWindow:  time.Duration(business.DuplicateWindowSeconds) * time.Second,
			SelectionTimeout: time.Duration(business.CategoryTimeoutSeconds) * time.Second,
		},
		log.Named("intake"),
	)
}
