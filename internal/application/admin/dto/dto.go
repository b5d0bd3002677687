package dto

import (
	"time"

	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/shared/mapper"
)

type AdminDTO struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Username   string    `json:"username"`
	Contact    string    `json:"contact,omitempty"`
	Email      string    `json:"email,omitempty"`
	Role       string    `json:"role"`
	RoleLabel  string    `json:"role_label"`
	PropertyID *uint     `json:"property_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToAdminDTO(a *admin.Admin) *AdminDTO {
	if a == nil {
		return nil
	}
	return &AdminDTO{
		ID:         a.ID(),
		Name:       a.Name(),
		Username:   a.Username(),
		Contact:    a.Contact(),
		Email:      a.Email(),
		Role:       a.Role().String(),
		RoleLabel:  a.Role().Label(),
		PropertyID: a.PropertyID(),
		CreatedAt:  a.CreatedAt(),
		UpdatedAt:  a.UpdatedAt(),
	}
}

func ToAdminDTOs(admins []*admin.Admin) []*AdminDTO {
	return mapper.MapSlice(admins, ToAdminDTO)
}

type LoginResult struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	Admin       *AdminDTO `json:"admin"`
}
