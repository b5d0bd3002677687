package usecases

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/application/admin/dto"
	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/shared/authorization"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type UpdateAdminCommand struct {
	AdminID    uint
	Name       string
	Contact    string
	Email      string
	Role       string
	PropertyID *uint
	// Password is changed only when non-empty.
	Password string
}

type UpdateAdminUseCase struct {
	adminRepo admin.Repository
	hasher    PasswordHasher
	logger    logger.Interface
}

func NewUpdateAdminUseCase(adminRepo admin.Repository, hasher PasswordHasher, logger logger.Interface) *UpdateAdminUseCase {
	return &UpdateAdminUseCase{adminRepo: adminRepo, hasher: hasher, logger: logger}
}

func (uc *UpdateAdminUseCase) Execute(ctx context.Context, cmd UpdateAdminCommand) (*dto.AdminDTO, error) {
	role, err := authorization.ParseAdminRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	a, err := uc.adminRepo.GetByID(ctx, cmd.AdminID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load admin", err, "admin_id", cmd.AdminID)
	}

	err = a.UpdateProfile(admin.Profile{
		Name:       cmd.Name,
		Contact:    cmd.Contact,
		Email:      cmd.Email,
		Role:       role,
		PropertyID: cmd.PropertyID,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Password != "" {
		if len(cmd.Password) < minPasswordLength {
			return nil, errors.NewValidationError("password must be at least 8 characters")
		}
		hash, err := uc.hasher.Hash(cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to update admin")
		}
		if err := a.ChangePasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.adminRepo.Update(ctx, a); err != nil {
		return nil, passOrInternal(uc.logger, "failed to update admin", err, "admin_id", a.ID())
	}
	return dto.ToAdminDTO(a), nil
}

type DeleteAdminCommand struct {
	AdminID uint
	ActorID uint
}

type DeleteAdminUseCase struct {
	adminRepo admin.Repository
	logger    logger.Interface
}

func NewDeleteAdminUseCase(adminRepo admin.Repository, logger logger.Interface) *DeleteAdminUseCase {
	return &DeleteAdminUseCase{adminRepo: adminRepo, logger: logger}
}

func (uc *DeleteAdminUseCase) Execute(ctx context.Context, cmd DeleteAdminCommand) error {
	if cmd.AdminID == cmd.ActorID {
		return errors.NewValidationError("you cannot delete your own account")
	}
	if _, err := uc.adminRepo.GetByID(ctx, cmd.AdminID); err != nil {
		return passOrInternal(uc.logger, "failed to load admin", err, "admin_id", cmd.AdminID)
	}
	if err := uc.adminRepo.Delete(ctx, cmd.AdminID); err != nil {
		return passOrInternal(uc.logger, "failed to delete admin", err, "admin_id", cmd.AdminID)
	}
	uc.logger.Infow("admin deleted", "admin_id", cmd.AdminID, "actor_id", cmd.ActorID)
	return nil
}

type GetAdminUseCase struct {
	adminRepo admin.Repository
	logger    logger.Interface
}

func NewGetAdminUseCase(adminRepo admin.Repository, logger logger.Interface) *GetAdminUseCase {
	return &GetAdminUseCase{adminRepo: adminRepo, logger: logger}
}

func (uc *GetAdminUseCase) Execute(ctx context.Context, adminID uint) (*dto.AdminDTO, error) {
	a, err := uc.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load admin", err, "admin_id", adminID)
	}
	return dto.ToAdminDTO(a), nil
}

type ListAdminsQuery struct {
	Role     string
	Page     int
	PageSize int
}

type ListAdminsUseCase struct {
	adminRepo admin.Repository
	logger    logger.Interface
}

func NewListAdminsUseCase(adminRepo admin.Repository, logger logger.Interface) *ListAdminsUseCase {
	return &ListAdminsUseCase{adminRepo: adminRepo, logger: logger}
}

func (uc *ListAdminsUseCase) Execute(ctx context.Context, q ListAdminsQuery) ([]*dto.AdminDTO, int64, error) {
	filter := admin.Filter{Page: q.Page, PageSize: q.PageSize}
	if q.Role != "" {
		role, err := authorization.ParseAdminRole(q.Role)
		if err != nil {
			return nil, 0, errors.NewValidationError(err.Error())
		}
		filter.Role = &role
	}
	admins, total, err := uc.adminRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list admins", "error", err)
		return nil, 0, errors.NewInternalError("failed to list admins")
	}
	return dto.ToAdminDTOs(admins), total, nil
}
