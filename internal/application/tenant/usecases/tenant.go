package usecases

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/application/tenant/dto"
	"github.com/estatedesk/estatedesk/internal/domain/property"
	"github.com/estatedesk/estatedesk/internal/domain/tenant"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
	"github.com/estatedesk/estatedesk/internal/shared/utils"
)

type RegisterTenantCommand struct {
	Name       string
	Contact    string
	PropertyID *uint
	Unit       string
}

type RegisterTenantUseCase struct {
	tenantRepo   tenant.Repository
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewRegisterTenantUseCase(tenantRepo tenant.Repository, propertyRepo property.Repository, logger logger.Interface) *RegisterTenantUseCase {
	return &RegisterTenantUseCase{tenantRepo: tenantRepo, propertyRepo: propertyRepo, logger: logger}
}

func (uc *RegisterTenantUseCase) Execute(ctx context.Context, cmd RegisterTenantCommand) (*dto.TenantDTO, error) {
	uc.logger.Infow("executing register tenant use case", "property_id", cmd.PropertyID)

	contact := utils.NormalizeContactHandle(cmd.Contact)
	if !utils.IsContactHandle(contact) {
		return nil, errors.NewValidationError("contact must be a phone number in international format")
	}
	if err := checkProperty(ctx, uc.propertyRepo, cmd.PropertyID); err != nil {
		return nil, passOrInternal(uc.logger, "failed to load property", err)
	}

	existing, err := uc.tenantRepo.GetByContact(ctx, contact)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to check contact", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("a tenant with this contact is already registered")
	}

	t, err := tenant.NewTenant(cmd.Name, contact, cmd.PropertyID, cmd.Unit)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.tenantRepo.Create(ctx, t); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a tenant with this contact is already registered")
		}
		return nil, passOrInternal(uc.logger, "failed to register tenant", err)
	}

	uc.logger.Infow("tenant registered", "tenant_id", t.ID())
	return dto.ToTenantDTO(t), nil
}

type UpdateTenantCommand struct {
	TenantID   uint
	Name       string
	Contact    string
	PropertyID *uint
	Unit       string
}

type UpdateTenantUseCase struct {
	tenantRepo   tenant.Repository
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewUpdateTenantUseCase(tenantRepo tenant.Repository, propertyRepo property.Repository, logger logger.Interface) *UpdateTenantUseCase {
	return &UpdateTenantUseCase{tenantRepo: tenantRepo, propertyRepo: propertyRepo, logger: logger}
}

func (uc *UpdateTenantUseCase) Execute(ctx context.Context, cmd UpdateTenantCommand) (*dto.TenantDTO, error) {
	t, err := uc.tenantRepo.GetByID(ctx, cmd.TenantID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load tenant", err, "tenant_id", cmd.TenantID)
	}

	contact := utils.NormalizeContactHandle(cmd.Contact)
	if !utils.IsContactHandle(contact) {
		return nil, errors.NewValidationError("contact must be a phone number in international format")
	}
	if err := checkProperty(ctx, uc.propertyRepo, cmd.PropertyID); err != nil {
		return nil, passOrInternal(uc.logger, "failed to load property", err)
	}
	if contact != t.Contact() {
		other, err := uc.tenantRepo.GetByContact(ctx, contact)
		if err != nil {
			return nil, passOrInternal(uc.logger, "failed to check contact", err)
		}
		if other != nil && other.ID() != t.ID() {
			return nil, errors.NewConflictError("a tenant with this contact is already registered")
		}
	}

	if err := t.Update(cmd.Name, contact, cmd.PropertyID, cmd.Unit); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.tenantRepo.Update(ctx, t); err != nil {
		return nil, passOrInternal(uc.logger, "failed to update tenant", err, "tenant_id", t.ID())
	}
	return dto.ToTenantDTO(t), nil
}

// DeleteTenantUseCase removes a tenant with no tickets. Tickets keep their
// reporter reference, so a tenant with history cannot be removed.
type DeleteTenantUseCase struct {
	tenantRepo tenant.Repository
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteTenantUseCase(tenantRepo tenant.Repository, ticketRepo ticket.Repository, logger logger.Interface) *DeleteTenantUseCase {
	return &DeleteTenantUseCase{tenantRepo: tenantRepo, ticketRepo: ticketRepo, logger: logger}
}

func (uc *DeleteTenantUseCase) Execute(ctx context.Context, tenantID uint) error {
	if _, err := uc.tenantRepo.GetByID(ctx, tenantID); err != nil {
		return passOrInternal(uc.logger, "failed to load tenant", err, "tenant_id", tenantID)
	}
	n, err := uc.ticketRepo.CountByUser(ctx, tenantID)
	if err != nil {
		return passOrInternal(uc.logger, "failed to count tenant tickets", err, "tenant_id", tenantID)
	}
	if n > 0 {
		return errors.NewConflictError("tenant still has tickets and cannot be deleted")
	}
	if err := uc.tenantRepo.Delete(ctx, tenantID); err != nil {
		return passOrInternal(uc.logger, "failed to delete tenant", err, "tenant_id", tenantID)
	}
	uc.logger.Infow("tenant deleted", "tenant_id", tenantID)
	return nil
}

type GetTenantUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewGetTenantUseCase(tenantRepo tenant.Repository, logger logger.Interface) *GetTenantUseCase {
	return &GetTenantUseCase{tenantRepo: tenantRepo, logger: logger}
}

func (uc *GetTenantUseCase) Execute(ctx context.Context, tenantID uint) (*dto.TenantDTO, error) {
	t, err := uc.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load tenant", err, "tenant_id", tenantID)
	}
	return dto.ToTenantDTO(t), nil
}

type ListTenantsQuery struct {
	PropertyID *uint
	Search     string
	Page       int
	PageSize   int
}

type ListTenantsUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewListTenantsUseCase(tenantRepo tenant.Repository, logger logger.Interface) *ListTenantsUseCase {
	return &ListTenantsUseCase{tenantRepo: tenantRepo, logger: logger}
}

func (uc *ListTenantsUseCase) Execute(ctx context.Context, q ListTenantsQuery) ([]*dto.TenantDTO, int64, error) {
	tenants, total, err := uc.tenantRepo.List(ctx, tenant.Filter{
		PropertyID: q.PropertyID,
		Search:     q.Search,
		Page:       q.Page,
		PageSize:   q.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list tenants", "error", err)
		return nil, 0, errors.NewInternalError("failed to list tenants")
	}
	return dto.ToTenantDTOs(tenants), total, nil
}

func checkProperty(ctx context.Context, propertyRepo property.Repository, propertyID *uint) error {
	if propertyID == nil {
		return nil
	}
	if _, err := propertyRepo.GetByID(ctx, *propertyID); err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewValidationError("property not found")
		}
		return err
	}
	return nil
}
