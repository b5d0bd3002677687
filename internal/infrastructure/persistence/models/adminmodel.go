package models

import "time"

type AdminModel struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"size:100;not null"`
	Username     string    `gorm:"size:64;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:255;not null"`
	Contact      string    `gorm:"size:32"`
	Email        string    `gorm:"size:255"`
	Role         string    `gorm:"size:32;not null;index"`
	PropertyID   *uint     `gorm:"index"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (AdminModel) TableName() string {
	return "admins"
}
