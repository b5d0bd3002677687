package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/infrastructure/persistence/mappers"
	"github.com/estatedesk/estatedesk/internal/infrastructure/persistence/models"
	"github.com/estatedesk/estatedesk/internal/shared/db"
	apperrors "github.com/estatedesk/estatedesk/internal/shared/errors"
)

type AdminRepository struct {
	db     *gorm.DB
	mapper mappers.AdminMapper
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db, mapper: mappers.NewAdminMapper()}
}

func (r *AdminRepository) Create(ctx context.Context, a *admin.Admin) error {
	model := r.mapper.ToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save admin: %w", err)
	}
	a.SetID(model.ID)
	return nil
}

func (r *AdminRepository) Update(ctx context.Context, a *admin.Admin) error {
	model := r.mapper.ToModel(a)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AdminModel{ID: model.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update admin: %w", result.Error)
	}
	return nil
}

func (r *AdminRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.AdminModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete admin: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("admin not found")
	}
	return nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id uint) (*admin.Admin, error) {
	var model models.AdminModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("admin not found")
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	var list []models.AdminModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("username = ?", username).
		Limit(1).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find admin by username: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return r.mapper.ToDomain(&list[0]), nil
}

func (r *AdminRepository) GetByIDs(ctx context.Context, ids []uint) ([]*admin.Admin, error) {
	if len(ids) == 0 {
		return []*admin.Admin{}, nil
	}
	var list []models.AdminModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find admins: %w", err)
	}
	return r.mapper.ToDomainList(list), nil
}

func (r *AdminRepository) List(ctx context.Context, filter admin.Filter) ([]*admin.Admin, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AdminModel{})
	if filter.Role != nil {
		query = query.Where("role = ?", filter.Role.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count admins: %w", err)
	}

	var list []models.AdminModel
	if err := query.
		Order("name ASC, id ASC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list admins: %w", err)
	}
	return r.mapper.ToDomainList(list), total, nil
}

var _ admin.Repository = (*AdminRepository)(nil)
