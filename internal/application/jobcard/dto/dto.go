package dto

import (
	"time"

	"github.com/estatedesk/estatedesk/internal/domain/jobcard"
	"github.com/estatedesk/estatedesk/internal/shared/mapper"
)

type JobCardDTO struct {
	ID            uint       `json:"id"`
	TicketID      *uint      `json:"ticket_id,omitempty"`
	PropertyID    *uint      `json:"property_id,omitempty"`
	Unit          string     `json:"unit"`
	CreatedBy     *uint      `json:"created_by,omitempty"`
	AssignedTo    *uint      `json:"assigned_to,omitempty"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Activities    string     `json:"activities"`
	EstimatedCost int64      `json:"estimated_cost"`
	ActualCost    int64      `json:"actual_cost"`
	Status        string     `json:"status"`
	Locked        bool       `json:"locked"`
	HasPublicLink bool       `json:"has_public_link"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

func ToJobCardDTO(j *jobcard.JobCard) *JobCardDTO {
	if j == nil {
		return nil
	}
	return &JobCardDTO{
		ID:            j.ID(),
		TicketID:      j.TicketID(),
		PropertyID:    j.PropertyID(),
		Unit:          j.Unit(),
		CreatedBy:     j.CreatedBy(),
		AssignedTo:    j.AssignedTo(),
		Title:         j.Title(),
		Description:   j.Description(),
		Activities:    j.Activities(),
		EstimatedCost: j.EstimatedCost(),
		ActualCost:    j.ActualCost(),
		Status:        j.Status().String(),
		Locked:        j.IsLocked(),
		HasPublicLink: j.PublicToken() != "",
		CreatedAt:     j.CreatedAt(),
		UpdatedAt:     j.UpdatedAt(),
		CompletedAt:   j.CompletedAt(),
	}
}

func ToJobCardDTOs(cards []*jobcard.JobCard) []*JobCardDTO {
	return mapper.MapSlice(cards, ToJobCardDTO)
}

type SignoffDTO struct {
	ID           uint      `json:"id"`
	SignerName   string    `json:"signer_name"`
	Role         string    `json:"role"`
	Notes        string    `json:"notes,omitempty"`
	HasSignature bool      `json:"has_signature"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToSignoffDTO(s *jobcard.Signoff) SignoffDTO {
	return SignoffDTO{
		ID:           s.ID(),
		SignerName:   s.SignerName(),
		Role:         s.Role(),
		Notes:        s.Notes(),
		HasSignature: s.HasSignature(),
		CreatedAt:    s.CreatedAt(),
	}
}

type MediaDTO struct {
	ID                  uint      `json:"id"`
	SourceTicketMediaID *uint     `json:"source_ticket_media_id,omitempty"`
	FileName            string    `json:"file_name"`
	ContentType         string    `json:"content_type"`
	Size                int       `json:"size"`
	CreatedAt           time.Time `json:"created_at"`
}

func ToMediaDTO(m *jobcard.Media) MediaDTO {
	return MediaDTO{
		ID:                  m.ID(),
		SourceTicketMediaID: m.SourceTicketMediaID(),
		FileName:            m.FileName(),
		ContentType:         m.ContentType(),
		Size:                m.Size(),
		CreatedAt:           m.CreatedAt(),
	}
}

// JobCardDetailDTO is the staff view of one card with its attachments and
// signoff history.
type JobCardDetailDTO struct {
	*JobCardDTO
	Media    []MediaDTO   `json:"media"`
	Signoffs []SignoffDTO `json:"signoffs"`
}
