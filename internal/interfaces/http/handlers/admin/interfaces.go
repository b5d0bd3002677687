package admin

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/application/admin/dto"
	"github.com/estatedesk/estatedesk/internal/application/admin/usecases"
	settingdto "github.com/estatedesk/estatedesk/internal/application/setting/dto"
)

type createAdminUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateAdminCommand) (*dto.AdminDTO, error)
}

type updateAdminUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateAdminCommand) (*dto.AdminDTO, error)
}

type deleteAdminUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteAdminCommand) error
}

type getAdminUseCase interface {
	Execute(ctx context.Context, adminID uint) (*dto.AdminDTO, error)
}

type listAdminsUseCase interface {
	Execute(ctx context.Context, q usecases.ListAdminsQuery) ([]*dto.AdminDTO, int64, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*dto.LoginResult, error)
}

type getSettingsUseCase interface {
	Execute(ctx context.Context, category string) ([]settingdto.SettingDTO, error)
}

type updateSettingsUseCase interface {
	Execute(ctx context.Context, category string, request settingdto.UpdateCategorySettingsRequest, updatedBy uint) error
}
