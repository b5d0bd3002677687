package models

import "time"

// JobCardModel stores job cards. PublicToken is NULL until issued so the
// unique index only covers issued tokens. SignoffCount is filled by a
// subquery on read and never written.
type JobCardModel struct {
	ID            uint       `gorm:"primaryKey"`
	TicketID      *uint      `gorm:"uniqueIndex"`
	PropertyID    *uint      `gorm:"index"`
	Unit          string     `gorm:"size:20"`
	CreatedBy     *uint
	AssignedTo    *uint      `gorm:"index"`
	Title         string     `gorm:"size:200;not null"`
	Description   string     `gorm:"type:text;not null"`
	Activities    string     `gorm:"type:text"`
	EstimatedCost int64      `gorm:"not null;default:0"`
	ActualCost    int64      `gorm:"not null;default:0"`
	Status        string     `gorm:"size:20;not null;index"`
	PublicToken   *string    `gorm:"size:64;uniqueIndex"`
	TokenIssuedAt *time.Time
	CompletedAt   *time.Time
	CreatedAt     time.Time `gorm:"not null;index"`
	UpdatedAt     time.Time `gorm:"not null"`

	SignoffCount int `gorm:"->;-:migration"`
}

func (JobCardModel) TableName() string {
	return "job_cards"
}

// JobCardMediaModel rows copied from a ticket keep the source id; the
// composite unique index makes repeated copies no-ops.
type JobCardMediaModel struct {
	ID                  uint      `gorm:"primaryKey"`
	JobCardID           uint      `gorm:"not null;index;uniqueIndex:idx_job_card_media_source"`
	SourceTicketMediaID *uint     `gorm:"uniqueIndex:idx_job_card_media_source"`
	FileName            string    `gorm:"size:255;not null"`
	ContentType         string    `gorm:"size:100;not null"`
	Data                []byte    `gorm:"type:longblob;not null"`
	CreatedAt           time.Time `gorm:"not null"`
}

func (JobCardMediaModel) TableName() string {
	return "job_card_media"
}

type JobCardSignoffModel struct {
	ID         uint      `gorm:"primaryKey"`
	JobCardID  uint      `gorm:"not null;index"`
	SignerName string    `gorm:"size:100;not null"`
	Role       string    `gorm:"size:50"`
	Notes      string    `gorm:"type:text"`
	Signature  []byte    `gorm:"type:longblob"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (JobCardSignoffModel) TableName() string {
	return "job_card_signoffs"
}
