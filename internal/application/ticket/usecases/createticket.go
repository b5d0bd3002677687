package usecases

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/application/ticket/dto"
	"github.com/estatedesk/estatedesk/internal/domain/property"
	"github.com/estatedesk/estatedesk/internal/domain/tenant"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	vo "github.com/estatedesk/estatedesk/internal/domain/ticket/valueobjects"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	UserID      uint
	Description string
	Category    string
	// PropertyID defaults to the tenant's property.
	PropertyID *uint
	// AssignedAdminID defaults to the property's supervisor.
	AssignedAdminID *uint
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.Repository
	tenantRepo   tenant.Repository
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	tenantRepo tenant.Repository,
	propertyRepo property.Repository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		tenantRepo:   tenantRepo,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "user_id", cmd.UserID, "category", cmd.Category)

	category, err := uc.validateCommand(cmd)
	if err != nil {
		return nil, err
	}

	reporter, err := uc.tenantRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load tenant", err, "user_id", cmd.UserID)
	}

	propertyID := cmd.PropertyID
	if propertyID == nil {
		propertyID = reporter.PropertyID()
	}

	assignee := cmd.AssignedAdminID
	if assignee == nil && propertyID != nil {
		prop, err := uc.propertyRepo.GetByID(ctx, *propertyID)
		if err != nil {
			return nil, passOrInternal(uc.logger, "failed to load property", err, "property_id", *propertyID)
		}
		assignee = prop.SupervisorID()
	}

	t, err := ticket.NewTicket(reporter.ID(), cmd.Description, category, propertyID, assignee)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "assigned_admin_id", assignee)
	return dto.ToTicketDTO(t), nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) (vo.Category, error) {
	if cmd.UserID == 0 {
		return "", errors.NewValidationError("user ID is required")
	}
	category, err := vo.NewCategory(cmd.Category)
	if err != nil {
		return "", errors.NewValidationError(err.Error())
	}
	return category, nil
}
