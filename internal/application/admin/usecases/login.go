package usecases

import (
	"context"
	"strings"

	"github.com/estatedesk/estatedesk/internal/application/admin/dto"
	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type LoginCommand struct {
	Username  string
	Password  string
	IPAddress string
}

type LoginUseCase struct {
	adminRepo admin.Repository
	hasher    PasswordHasher
	tokens    TokenIssuer
	logger    logger.Interface
}

func NewLoginUseCase(adminRepo admin.Repository, hasher PasswordHasher, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{adminRepo: adminRepo, hasher: hasher, tokens: tokens, logger: logger}
}

// Execute never reveals whether the username or the password was wrong.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResult, error) {
	username := strings.TrimSpace(cmd.Username)
	if username == "" || cmd.Password == "" {
		return nil, errors.NewInvalidCredentialsError()
	}

	a, err := uc.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load admin", err)
	}
	if a == nil {
		uc.logger.Infow("login failed", "username", username, "ip", cmd.IPAddress)
		return nil, errors.NewInvalidCredentialsError()
	}
	if err := uc.hasher.Verify(a.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Infow("login failed", "admin_id", a.ID(), "ip", cmd.IPAddress)
		return nil, errors.NewInvalidCredentialsError()
	}

	token, expiresIn, err := uc.tokens.Issue(a.ID(), a.Name(), a.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "admin_id", a.ID(), "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	uc.logger.Infow("admin logged in", "admin_id", a.ID(), "role", a.Role().String())
	return &dto.LoginResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		Admin:       dto.ToAdminDTO(a),
	}, nil
}
