// Package setting holds runtime settings persisted in system_settings.
// A stored value overrides the configuration file fallback.
package setting

import (
	"strings"
	"time"

	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

type SystemSetting struct {
	id          uint
	category    string
	key         string
	value       string
	description string
	updatedBy   *uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSystemSetting(category, key, value, description string, updatedBy *uint) (*SystemSetting, error) {
	category = strings.TrimSpace(category)
	key = strings.TrimSpace(key)
	if category == "" || key == "" {
		return nil, ErrInvalidSettingKey
	}
	now := biztime.Now()
	return &SystemSetting{
		category:    category,
		key:         key,
		value:       value,
		description: description,
		updatedBy:   updatedBy,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructSystemSetting(
	id uint,
	category, key, value, description string,
	updatedBy *uint,
	createdAt, updatedAt time.Time,
) *SystemSetting {
	return &SystemSetting{
		id:          id,
		category:    category,
		key:         key,
		value:       value,
		description: description,
		updatedBy:   updatedBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *SystemSetting) ID() uint             { return s.id }
func (s *SystemSetting) Category() string     { return s.category }
func (s *SystemSetting) Key() string          { return s.key }
func (s *SystemSetting) Value() string        { return s.value }
func (s *SystemSetting) Description() string  { return s.description }
func (s *SystemSetting) UpdatedBy() *uint     { return s.updatedBy }
func (s *SystemSetting) CreatedAt() time.Time { return s.createdAt }
func (s *SystemSetting) UpdatedAt() time.Time { return s.updatedAt }

func (s *SystemSetting) SetID(id uint) {
	s.id = id
}

// HasValue reports whether a non-blank value is stored.
func (s *SystemSetting) HasValue() bool {
	return strings.TrimSpace(s.value) != ""
}

func (s *SystemSetting) SetValue(value string, updatedBy *uint) {
	s.value = value
	s.updatedBy = updatedBy
	s.updatedAt = biztime.Now()
}
