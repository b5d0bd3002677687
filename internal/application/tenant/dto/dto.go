package dto

import (
	"time"

	"github.com/estatedesk/estatedesk/internal/domain/tenant"
	"github.com/estatedesk/estatedesk/internal/shared/mapper"
)

type TenantDTO struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Contact    string    `json:"contact"`
	PropertyID *uint     `json:"property_id,omitempty"`
	Unit       string    `json:"unit"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToTenantDTO(t *tenant.Tenant) *TenantDTO {
	if t == nil {
		return nil
	}
	return &TenantDTO{
		ID:         t.ID(),
		Name:       t.Name(),
		Contact:    t.Contact(),
		PropertyID: t.PropertyID(),
		Unit:       t.Unit(),
		CreatedAt:  t.CreatedAt(),
		UpdatedAt:  t.UpdatedAt(),
	}
}

func ToTenantDTOs(tenants []*tenant.Tenant) []*TenantDTO {
	return mapper.MapSlice(tenants, ToTenantDTO)
}
