package models

import "time"

type PropertyModel struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"size:150;not null;uniqueIndex"`
	SupervisorID *uint     `gorm:"index"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (PropertyModel) TableName() string {
	return "properties"
}
