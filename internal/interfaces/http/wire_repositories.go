package http

import (
	"gorm.io/gorm"

	"github.com/estatedesk/estatedesk/internal/domain/setting"
	"github.com/estatedesk/estatedesk/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	adminRepo        *repository.AdminRepository
	propertyRepo     *repository.PropertyRepository
	tenantRepo       *repository.TenantRepository
	ticketRepo       *repository.TicketRepository
	updateRepo       *repository.TicketUpdateRepository
	reassignmentRepo *repository.ReassignmentRepository
	ticketMediaRepo  *repository.TicketMediaRepository
	jobCardRepo      *repository.JobCardRepository
	jobCardMediaRepo *repository.JobCardMediaRepository
	signoffRepo      *repository.JobCardSignoffRepository
	reportRepo       *repository.ReportRepository
	settingRepo      setting.Repository
}

func newRepositories(db *gorm.DB, c *Container) *repositories {
	return &repositories{
		adminRepo:        repository.NewAdminRepository(db),
		propertyRepo:     repository.NewPropertyRepository(db),
		tenantRepo:       repository.NewTenantRepository(db),
		ticketRepo:       repository.NewTicketRepository(db),
		updateRepo:       repository.NewTicketUpdateRepository(db),
		reassignmentRepo: repository.NewReassignmentRepository(db),
		ticketMediaRepo:  repository.NewTicketMediaRepository(db),
		jobCardRepo:      repository.NewJobCardRepository(db),
		jobCardMediaRepo: repository.NewJobCardMediaRepository(db),
		signoffRepo:      repository.NewJobCardSignoffRepository(db),
		reportRepo:       repository.NewReportRepository(db),
		settingRepo:      repository.NewSystemSettingRepository(db, c.log.Named("settings")),
	}
}
