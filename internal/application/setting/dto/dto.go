package dto

import (
	"time"

	"github.com/estatedesk/estatedesk/internal/domain/setting"
)

type SettingDTO struct {
	Category    string    `json:"category"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToSettingDTO(s *setting.SystemSetting) SettingDTO {
	return SettingDTO{
		Category:    s.Category(),
		Key:         s.Key(),
		Value:       s.Value(),
		Description: s.Description(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

// UpdateCategorySettingsRequest replaces the listed keys of one category.
type UpdateCategorySettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required"`
}
