package mappers

import (
	"github.com/estatedesk/estatedesk/internal/domain/tenant"
	"github.com/estatedesk/estatedesk/internal/infrastructure/persistence/models"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

type TenantMapper interface {
	ToModel(t *tenant.Tenant) *models.TenantModel
	ToDomain(model *models.TenantModel) *tenant.Tenant
	ToDomainList(list []models.TenantModel) []*tenant.Tenant
}

type TenantMapperImpl struct{}

func NewTenantMapper() TenantMapper {
	return &TenantMapperImpl{}
}

func (m *TenantMapperImpl) ToModel(t *tenant.Tenant) *models.TenantModel {
	return &models.TenantModel{
		ID:         t.ID(),
		Name:       t.Name(),
		Contact:    t.Contact(),
		PropertyID: t.PropertyID(),
		Unit:       t.Unit(),
		CreatedAt:  utc(t.CreatedAt()),
		UpdatedAt:  utc(t.UpdatedAt()),
	}
}

func (m *TenantMapperImpl) ToDomain(model *models.TenantModel) *tenant.Tenant {
	if model == nil {
		return nil
	}
	return tenant.ReconstructTenant(
		model.ID,
		model.Name,
		model.Contact,
		model.PropertyID,
		model.Unit,
		biztime.In(model.CreatedAt),
		biztime.In(model.UpdatedAt),
	)
}

func (m *TenantMapperImpl) ToDomainList(list []models.TenantModel) []*tenant.Tenant {
	out := make([]*tenant.Tenant, 0, len(list))
	for i := range list {
		out = append(out, m.ToDomain(&list[i]))
	}
	return out
}
