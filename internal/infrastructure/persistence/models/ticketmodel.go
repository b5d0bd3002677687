package models

import "time"

type TicketModel struct {
	ID              uint       `gorm:"primaryKey"`
	UserID          uint       `gorm:"not null;index"`
	Description     string     `gorm:"type:text;not null"`
	Category        string     `gorm:"size:50;not null;index"`
	Status          string     `gorm:"size:20;not null;index"`
	PropertyID      *uint      `gorm:"index"`
	AssignedAdminID *uint      `gorm:"index"`
	DueDate         *time.Time `gorm:"index"`
	IsRead          bool       `gorm:"not null;default:false"`
	ResolvedAt      *time.Time
	CreatedAt       time.Time `gorm:"not null;index"`
	UpdatedAt       time.Time `gorm:"not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketUpdateModel struct {
	ID        uint      `gorm:"primaryKey"`
	TicketID  uint      `gorm:"not null;index"`
	Text      string    `gorm:"type:text;not null"`
	Author    string    `gorm:"size:100"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (TicketUpdateModel) TableName() string {
	return "ticket_updates"
}

// AdminChangeLogModel is the reassignment audit trail. ReassignCount only
// grows per ticket.
type AdminChangeLogModel struct {
	ID            uint      `gorm:"primaryKey"`
	TicketID      uint      `gorm:"not null;index:idx_change_log_ticket"`
	OldAdminID    *uint
	NewAdminID    uint      `gorm:"not null"`
	Actor         string    `gorm:"size:100"`
	Reason        string    `gorm:"size:500"`
	ReassignCount int       `gorm:"not null"`
	Override      bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time `gorm:"not null;index:idx_change_log_ticket"`
}

func (AdminChangeLogModel) TableName() string {
	return "admin_change_logs"
}

type TicketMediaModel struct {
	ID          uint      `gorm:"primaryKey"`
	TicketID    uint      `gorm:"not null;index"`
	FileName    string    `gorm:"size:255;not null"`
	ContentType string    `gorm:"size:100;not null"`
	Data        []byte    `gorm:"type:longblob;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (TicketMediaModel) TableName() string {
	return "ticket_media"
}
