package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/estatedesk/estatedesk/internal/domain/tenant"
	"github.com/estatedesk/estatedesk/internal/infrastructure/persistence/mappers"
	"github.com/estatedesk/estatedesk/internal/infrastructure/persistence/models"
	"github.com/estatedesk/estatedesk/internal/shared/db"
	apperrors "github.com/estatedesk/estatedesk/internal/shared/errors"
)

type TenantRepository struct {
	db     *gorm.DB
	mapper mappers.TenantMapper
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db, mapper: mappers.NewTenantMapper()}
}

func (r *TenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	model := r.mapper.ToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save tenant: %w", err)
	}
	t.SetID(model.ID)
	return nil
}

func (r *TenantRepository) Update(ctx context.Context, t *tenant.Tenant) error {
	model := r.mapper.ToModel(t)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TenantModel{ID: model.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update tenant: %w", result.Error)
	}
	return nil
}

func (r *TenantRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.TenantModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete tenant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("tenant not found")
	}
	return nil
}

func (r *TenantRepository) GetByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	var model models.TenantModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("tenant not found")
		}
		return nil, fmt.Errorf("failed to find tenant: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *TenantRepository) GetByContact(ctx context.Context, contact string) (*tenant.Tenant, error) {
	var list []models.TenantModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("contact = ?", contact).
		Limit(1).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find tenant by contact: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return r.mapper.ToDomain(&list[0]), nil
}

func (r *TenantRepository) List(ctx context.Context, filter tenant.Filter) ([]*tenant.Tenant, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.TenantModel{})
	if filter.PropertyID != nil {
		query = query.Where("property_id = ?", *filter.PropertyID)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		query = query.Where("LOWER(name) LIKE ? OR contact LIKE ? OR LOWER(unit) LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tenants: %w", err)
	}

	var list []models.TenantModel
	if err := query.
		Order("name ASC, id ASC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tenants: %w", err)
	}
	return r.mapper.ToDomainList(list), total, nil
}

var _ tenant.Repository = (*TenantRepository)(nil)
