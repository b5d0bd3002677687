package mappers

import (
	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/infrastructure/persistence/models"
	"github.com/estatedesk/estatedesk/internal/shared/authorization"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

// AdminMapper converts staff accounts between domain and persistence.
type AdminMapper interface {
	ToModel(a *admin.Admin) *models.AdminModel
	ToDomain(model *models.AdminModel) *admin.Admin
	ToDomainList(list []models.AdminModel) []*admin.Admin
}

type AdminMapperImpl struct{}

func NewAdminMapper() AdminMapper {
	return &AdminMapperImpl{}
}

func (m *AdminMapperImpl) ToModel(a *admin.Admin) *models.AdminModel {
	return &models.AdminModel{
		ID:           a.ID(),
		Name:         a.Name(),
		Username:     a.Username(),
		PasswordHash: a.PasswordHash(),
		Contact:      a.Contact(),
		Email:        a.Email(),
		Role:         a.Role().String(),
		PropertyID:   a.PropertyID(),
		CreatedAt:    utc(a.CreatedAt()),
		UpdatedAt:    utc(a.UpdatedAt()),
	}
}

func (m *AdminMapperImpl) ToDomain(model *models.AdminModel) *admin.Admin {
	if model == nil {
		return nil
	}
	// Legacy label values ("Property Manager") resolve through the parser.
	role, err := authorization.ParseAdminRole(model.Role)
	if err != nil {
		role = authorization.AdminRole(model.Role)
	}
	return admin.ReconstructAdmin(
		model.ID,
		model.Username,
		model.PasswordHash,
		admin.Profile{
			Name:       model.Name,
			Contact:    model.Contact,
			Email:      model.Email,
			Role:       role,
			PropertyID: model.PropertyID,
		},
		biztime.In(model.CreatedAt),
		biztime.In(model.UpdatedAt),
	)
}

func (m *AdminMapperImpl) ToDomainList(list []models.AdminModel) []*admin.Admin {
	admins := make([]*admin.Admin, 0, len(list))
	for i := range list {
		admins = append(admins, m.ToDomain(&list[i]))
	}
	return admins
}
