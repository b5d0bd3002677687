package usecases

import (
	"context"
	stderrors "errors"
	"net/url"
	"strings"

	"github.com/estatedesk/estatedesk/internal/application/setting/dto"
	"github.com/estatedesk/estatedesk/internal/domain/setting"
	"github.com/estatedesk/estatedesk/internal/shared/constants"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

// SettingChangeNotifier is told about committed setting changes.
type SettingChangeNotifier interface {
	OnSettingChange(ctx context.Context, category string, changes map[string]string) error
}

type settingSpec struct {
	description string
	validate    func(string) error
}

var knownSettings = map[string]map[string]settingSpec{
	constants.SettingCategoryJobCard: {
		constants.SettingKeyPublicBaseURL: {
			description: "Base URL for job card verification links; empty disables link sharing",
			validate:    validateBaseURL,
		},
	},
}

func validateBaseURL(v string) error {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	u, err := url.Parse(strings.TrimSpace(v))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.NewValidationError("public_base_url must be an absolute http(s) URL")
	}
	return nil
}

type GetSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewGetSettingsUseCase(settingRepo setting.Repository, logger logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{settingRepo: settingRepo, logger: logger}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context, category string) ([]dto.SettingDTO, error) {
	if _, ok := knownSettings[category]; !ok {
		return nil, errors.NewNotFoundError("unknown settings category")
	}
	rows, err := uc.settingRepo.GetByCategory(ctx, category)
	if err != nil {
		uc.logger.Errorw("failed to load settings", "category", category, "error", err)
		return nil, errors.NewInternalError("failed to load settings")
	}
	out := make([]dto.SettingDTO, 0, len(rows))
	for _, s := range rows {
		out = append(out, dto.ToSettingDTO(s))
	}
	return out, nil
}

type UpdateSettingsUseCase struct {
	settingRepo setting.Repository
	notifier    SettingChangeNotifier
	logger      logger.Interface
}

func NewUpdateSettingsUseCase(settingRepo setting.Repository, notifier SettingChangeNotifier, logger logger.Interface) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{settingRepo: settingRepo, notifier: notifier, logger: logger}
}

// Execute validates every key before writing any of them.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, category string, request dto.UpdateCategorySettingsRequest, updatedBy uint) error {
	specs, ok := knownSettings[category]
	if !ok {
		return errors.NewNotFoundError("unknown settings category")
	}
	if len(request.Settings) == 0 {
		return nil
	}
	for key, value := range request.Settings {
		spec, ok := specs[key]
		if !ok {
			return errors.NewValidationError("unknown setting key", key)
		}
		if spec.validate != nil {
			if err := spec.validate(value); err != nil {
				return err
			}
		}
	}

	for key, value := range request.Settings {
		if err := uc.upsert(ctx, category, key, value, specs[key].description, updatedBy); err != nil {
			uc.logger.Errorw("failed to update setting", "category", category, "key", key, "error", err)
			return errors.NewInternalError("failed to update setting")
		}
	}

	if uc.notifier != nil {
		if err := uc.notifier.OnSettingChange(ctx, category, request.Settings); err != nil {
			uc.logger.Warnw("failed to notify setting changes", "category", category, "error", err)
		}
	}
	uc.logger.Infow("settings updated", "category", category, "updated_by", updatedBy, "keys", len(request.Settings))
	return nil
}

func (uc *UpdateSettingsUseCase) upsert(ctx context.Context, category, key, value, description string, updatedBy uint) error {
	existing, err := uc.settingRepo.GetByKey(ctx, category, key)
	if err == nil {
		existing.SetValue(value, &updatedBy)
		return uc.settingRepo.Upsert(ctx, existing)
	}
	if !stderrors.Is(err, setting.ErrSettingNotFound) {
		return err
	}
	s, err := setting.NewSystemSetting(category, key, value, description, &updatedBy)
	if err != nil {
		return err
	}
	return uc.settingRepo.Upsert(ctx, s)
}
