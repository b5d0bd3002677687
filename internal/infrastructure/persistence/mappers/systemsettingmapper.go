package mappers

import (
	"github.com/estatedesk/estatedesk/internal/domain/setting"
	"github.com/estatedesk/estatedesk/internal/infrastructure/persistence/models"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

// SystemSettingMapper converts persisted runtime settings such as the public
// job card base URL.
type SystemSettingMapper interface {
	ToModel(s *setting.SystemSetting) *models.SystemSettingModel
	ToDomain(model *models.SystemSettingModel) *setting.SystemSetting
	ToDomainList(list []*models.SystemSettingModel) []*setting.SystemSetting
}

type SystemSettingMapperImpl struct{}

func NewSystemSettingMapper() SystemSettingMapper {
	return &SystemSettingMapperImpl{}
}

func (m *SystemSettingMapperImpl) ToModel(s *setting.SystemSetting) *models.SystemSettingModel {
	if s == nil {
		return nil
	}
	return &models.SystemSettingModel{
		ID:          s.ID(),
		Category:    s.Category(),
		SettingKey:  s.Key(),
		Value:       s.Value(),
		Description: s.Description(),
		UpdatedBy:   s.UpdatedBy(),
		CreatedAt:   utc(s.CreatedAt()),
		UpdatedAt:   utc(s.UpdatedAt()),
	}
}

func (m *SystemSettingMapperImpl) ToDomain(model *models.SystemSettingModel) *setting.SystemSetting {
	if model == nil {
		return nil
	}
	return setting.ReconstructSystemSetting(
		model.ID,
		model.Category, model.SettingKey, model.Value, model.Description,
		model.UpdatedBy,
		biztime.In(model.CreatedAt), biztime.In(model.UpdatedAt),
	)
}

func (m *SystemSettingMapperImpl) ToDomainList(list []*models.SystemSettingModel) []*setting.SystemSetting {
	out := make([]*setting.SystemSetting, 0, len(list))
	for _, model := range list {
		if s := m.ToDomain(model); s != nil {
			out = append(out, s)
		}
	}
	return out
}
