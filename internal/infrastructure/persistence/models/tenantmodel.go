package models

import "time"

// TenantModel stores tenants. Contact is the normalised messaging handle.
type TenantModel struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"size:100;not null"`
	Contact    string    `gorm:"size:32;not null;uniqueIndex"`
	PropertyID *uint     `gorm:"index"`
	Unit       string    `gorm:"size:20"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (TenantModel) TableName() string {
	return "tenants"
}
