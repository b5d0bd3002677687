package mappers

import (
	"github.com/estatedesk/estatedesk/internal/domain/property"
	"github.com/estatedesk/estatedesk/internal/infrastructure/persistence/models"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

type PropertyMapper interface {
	ToModel(p *property.Property) *models.PropertyModel
	ToDomain(model *models.PropertyModel) *property.Property
	ToDomainList(list []models.PropertyModel) []*property.Property
}

type PropertyMapperImpl struct{}

func NewPropertyMapper() PropertyMapper {
	return &PropertyMapperImpl{}
}

func (m *PropertyMapperImpl) ToModel(p *property.Property) *models.PropertyModel {
	return &models.PropertyModel{
		ID:           p.ID(),
		Name:         p.Name(),
		SupervisorID: p.SupervisorID(),
		CreatedAt:    utc(p.CreatedAt()),
		UpdatedAt:    utc(p.UpdatedAt()),
	}
}

func (m *PropertyMapperImpl) ToDomain(model *models.PropertyModel) *property.Property {
	if model == nil {
		return nil
	}
	return property.ReconstructProperty(
		model.ID,
		model.Name,
		model.SupervisorID,
		biztime.In(model.CreatedAt),
		biztime.In(model.UpdatedAt),
	)
}

func (m *PropertyMapperImpl) ToDomainList(list []models.PropertyModel) []*property.Property {
	out := make([]*property.Property, 0, len(list))
	for i := range list {
		out = append(out, m.ToDomain(&list[i]))
	}
	return out
}
