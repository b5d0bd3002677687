package usecases

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/estatedesk/estatedesk/internal/application/property/dto"
	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/domain/property"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type CreatePropertyCommand struct {
	Name         string
	SupervisorID *uint
}

type CreatePropertyUseCase struct {
	propertyRepo property.Repository
	adminRepo    admin.Repository
	logger       logger.Interface
}

func NewCreatePropertyUseCase(propertyRepo property.Repository, adminRepo admin.Repository, logger logger.Interface) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{propertyRepo: propertyRepo, adminRepo: adminRepo, logger: logger}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, cmd CreatePropertyCommand) (*dto.PropertyDTO, error) {
	uc.logger.Infow("executing create property use case", "name", cmd.Name)

	p, err := property.NewProperty(cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := assignSupervisor(ctx, uc.adminRepo, p, cmd.SupervisorID); err != nil {
		return nil, passOrInternal(uc.logger, "failed to load supervisor", err)
	}

	existing, err := uc.propertyRepo.GetByName(ctx, p.Name())
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to check property name", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("property name already exists", p.Name())
	}

	if err := uc.propertyRepo.Create(ctx, p); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("property name already exists", p.Name())
		}
		return nil, passOrInternal(uc.logger, "failed to create property", err)
	}

	uc.logger.Infow("property created", "property_id", p.ID())
	return dto.ToPropertyDTO(p), nil
}

type UpdatePropertyCommand struct {
	PropertyID   uint
	Name         string
	SupervisorID *uint
}

type UpdatePropertyUseCase struct {
	propertyRepo property.Repository
	adminRepo    admin.Repository
	logger       logger.Interface
}

func NewUpdatePropertyUseCase(propertyRepo property.Repository, adminRepo admin.Repository, logger logger.Interface) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{propertyRepo: propertyRepo, adminRepo: adminRepo, logger: logger}
}

// Execute renames the property when Name is set and replaces the supervisor.
// A nil SupervisorID clears the assignment.
func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, cmd UpdatePropertyCommand) (*dto.PropertyDTO, error) {
	p, err := uc.propertyRepo.GetByID(ctx, cmd.PropertyID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load property", err, "property_id", cmd.PropertyID)
	}

	if name := strings.TrimSpace(cmd.Name); name != "" && !strings.EqualFold(name, p.Name()) {
		existing, err := uc.propertyRepo.GetByName(ctx, name)
		if err != nil {
			return nil, passOrInternal(uc.logger, "failed to check property name", err)
		}
		if existing != nil && existing.ID() != p.ID() {
			return nil, errors.NewConflictError("property name already exists", name)
		}
		if err := p.Rename(name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := assignSupervisor(ctx, uc.adminRepo, p, cmd.SupervisorID); err != nil {
		return nil, passOrInternal(uc.logger, "failed to load supervisor", err)
	}

	if err := uc.propertyRepo.Update(ctx, p); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("property name already exists", p.Name())
		}
		return nil, passOrInternal(uc.logger, "failed to update property", err, "property_id", p.ID())
	}
	return dto.ToPropertyDTO(p), nil
}

func assignSupervisor(ctx context.Context, adminRepo admin.Repository, p *property.Property, supervisorID *uint) error {
	if supervisorID == nil {
		return p.AssignSupervisor(nil)
	}
	a, err := adminRepo.GetByID(ctx, *supervisorID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewValidationError("supervisor not found")
		}
		return err
	}
	if err := p.AssignSupervisor(a); err != nil {
		if stderrors.Is(err, property.ErrNotSupervisor) {
			return errors.NewValidationError(err.Error())
		}
		return err
	}
	return nil
}

type ListPropertiesUseCase struct {
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewListPropertiesUseCase(propertyRepo property.Repository, logger logger.Interface) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{propertyRepo: propertyRepo, logger: logger}
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context) ([]*dto.PropertyDTO, error) {
	props, err := uc.propertyRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list properties", "error", err)
		return nil, errors.NewInternalError("failed to list properties")
	}
	return dto.ToPropertyDTOs(props), nil
}

type GetPropertyUseCase struct {
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewGetPropertyUseCase(propertyRepo property.Repository, logger logger.Interface) *GetPropertyUseCase {
	return &GetPropertyUseCase{propertyRepo: propertyRepo, logger: logger}
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, propertyID uint) (*dto.PropertyDTO, error) {
	p, err := uc.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load property", err, "property_id", propertyID)
	}
	return dto.ToPropertyDTO(p), nil
}
