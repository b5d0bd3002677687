package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/estatedesk/estatedesk/internal/domain/property"
	"github.com/estatedesk/estatedesk/internal/infrastructure/persistence/mappers"
	"github.com/estatedesk/estatedesk/internal/infrastructure/persistence/models"
	"github.com/estatedesk/estatedesk/internal/shared/db"
	apperrors "github.com/estatedesk/estatedesk/internal/shared/errors"
)

type PropertyRepository struct {
	db     *gorm.DB
	mapper mappers.PropertyMapper
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db, mapper: mappers.NewPropertyMapper()}
}

func (r *PropertyRepository) Create(ctx context.Context, p *property.Property) error {
	model := r.mapper.ToModel(p)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save property: %w", err)
	}
	p.SetID(model.ID)
	return nil
}

func (r *PropertyRepository) Update(ctx context.Context, p *property.Property) error {
	model := r.mapper.ToModel(p)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PropertyModel{ID: model.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update property: %w", result.Error)
	}
	return nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id uint) (*property.Property, error) {
	var model models.PropertyModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("property not found")
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *PropertyRepository) GetByName(ctx context.Context, name string) (*property.Property, error) {
	var list []models.PropertyModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		Limit(1).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find property by name: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return r.mapper.ToDomain(&list[0]), nil
}

func (r *PropertyRepository) List(ctx context.Context) ([]*property.Property, error) {
	var list []models.PropertyModel
	if err := db.GetTxFromContext(ctx, r.db).Order("name ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return r.mapper.ToDomainList(list), nil
}

var _ property.Repository = (*PropertyRepository)(nil)
