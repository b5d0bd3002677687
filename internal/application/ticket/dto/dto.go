package dto

import (
	"time"

	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	"github.com/estatedesk/estatedesk/internal/shared/mapper"
)

type TicketDTO struct {
	ID              uint       `json:"id"`
	Number          string     `json:"number"`
	UserID          uint       `json:"user_id"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Status          string     `json:"status"`
	PropertyID      *uint      `json:"property_id,omitempty"`
	AssignedAdminID *uint      `json:"assigned_admin_id,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	IsRead          bool       `json:"is_read"`
	CreatedAt       time.Time  `json:"created_at"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:              t.ID(),
		Number:          t.Number(),
		UserID:          t.UserID(),
		Description:     t.Description(),
		Category:        t.Category().String(),
		Status:          t.Status().String(),
		PropertyID:      t.PropertyID(),
		AssignedAdminID: t.AssignedAdminID(),
		DueDate:         t.DueDate(),
		IsRead:          t.IsRead(),
		CreatedAt:       t.CreatedAt(),
		ResolvedAt:      t.ResolvedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	return mapper.MapSlice(tickets, ToTicketDTO)
}

type HistoryEntryDTO struct {
	Action string    `json:"action"`
	Detail string    `json:"detail"`
	Author string    `json:"author,omitempty"`
	At     time.Time `json:"at"`
}

func ToHistoryDTOs(entries []ticket.HistoryEntry) []HistoryEntryDTO {
	out := make([]HistoryEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryDTO{Action: e.Action, Detail: e.Detail, Author: e.Author, At: e.At})
	}
	return out
}

type MediaDTO struct {
	ID          uint      `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int       `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToMediaDTO(m *ticket.Media) MediaDTO {
	return MediaDTO{
		ID:          m.ID(),
		FileName:    m.FileName(),
		ContentType: m.ContentType(),
		Size:        m.Size(),
		CreatedAt:   m.CreatedAt(),
	}
}
