package dto

import (
	"time"

	"github.com/estatedesk/estatedesk/internal/domain/property"
	"github.com/estatedesk/estatedesk/internal/shared/mapper"
)

type PropertyDTO struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	SupervisorID *uint     `json:"supervisor_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToPropertyDTO(p *property.Property) *PropertyDTO {
	if p == nil {
		return nil
	}
	return &PropertyDTO{
		ID:           p.ID(),
		Name:         p.Name(),
		SupervisorID: p.SupervisorID(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

func ToPropertyDTOs(props []*property.Property) []*PropertyDTO {
	return mapper.MapSlice(props, ToPropertyDTO)
}
