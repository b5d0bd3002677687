package usecases

import (
	"context"
	"strings"

	"github.com/estatedesk/estatedesk/internal/application/admin/dto"
	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/shared/authorization"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

const minPasswordLength = 8

type CreateAdminCommand struct {
	Name       string
	Username   string
	Password   string
	Contact    string
	Email      string
	Role       string
	PropertyID *uint
}

type CreateAdminUseCase struct {
	adminRepo admin.Repository
	hasher    PasswordHasher
	logger    logger.Interface
}

func NewCreateAdminUseCase(adminRepo admin.Repository, hasher PasswordHasher, logger logger.Interface) *CreateAdminUseCase {
	return &CreateAdminUseCase{adminRepo: adminRepo, hasher: hasher, logger: logger}
}

func (uc *CreateAdminUseCase) Execute(ctx context.Context, cmd CreateAdminCommand) (*dto.AdminDTO, error) {
	uc.logger.Infow("executing create admin use case", "username", cmd.Username, "role", cmd.Role)

	role, err := authorization.ParseAdminRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	username := strings.TrimSpace(cmd.Username)
	existing, err := uc.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to check username", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("username already exists", username)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create admin")
	}

	a, err := admin.NewAdmin(username, hash, admin.Profile{
		Name:       cmd.Name,
		Contact:    cmd.Contact,
		Email:      cmd.Email,
		Role:       role,
		PropertyID: cmd.PropertyID,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.adminRepo.Create(ctx, a); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("username already exists", username)
		}
		return nil, passOrInternal(uc.logger, "failed to create admin", err)
	}

	uc.logger.Infow("admin created", "admin_id", a.ID(), "role", role.String())
	return dto.ToAdminDTO(a), nil
}
