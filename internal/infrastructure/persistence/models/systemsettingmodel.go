package models

import (
	"time"
)

// SystemSettingModel is the GORM model for system_settings table
type SystemSettingModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Category    string    `gorm:"column:category;type:varchar(100);not null;uniqueIndex:idx_category_key"`
	SettingKey  string    `gorm:"column:setting_key;type:varchar(100);not null;uniqueIndex:idx_category_key"`
	Value       string    `gorm:"column:value;type:text"`
	Description string    `gorm:"column:description;type:varchar(500)"`
	UpdatedBy   *uint     `gorm:"column:updated_by"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (SystemSettingModel) TableName() string {
	return "system_settings"
}
