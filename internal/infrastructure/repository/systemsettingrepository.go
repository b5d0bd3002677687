package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/estatedesk/estatedesk/internal/domain/setting"
	"github.com/estatedesk/estatedesk/internal/infrastructure/persistence/mappers"
	"github.com/estatedesk/estatedesk/internal/infrastructure/persistence/models"
	"github.com/estatedesk/estatedesk/internal/shared/db"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

// settingColumns are refreshed when an existing (category, key) row is saved again.
var settingColumns = []string{"value", "description", "updated_by", "updated_at"}

type SystemSettingRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.SystemSettingMapper
}

func NewSystemSettingRepository(db *gorm.DB, logger logger.Interface) setting.Repository {
	return &SystemSettingRepository{db: db, logger: logger, mapper: mappers.NewSystemSettingMapper()}
}

func settingKey(category, key string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		return q.Where("category = ? AND setting_key = ?", category, key)
	}
}

func (r *SystemSettingRepository) GetByKey(ctx context.Context, category, key string) (*setting.SystemSetting, error) {
	var row models.SystemSettingModel
	err := db.GetTxFromContext(ctx, r.db).Scopes(settingKey(category, key)).Take(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, setting.ErrSettingNotFound
	case err != nil:
		r.logger.Errorw("failed to load setting", "category", category, "key", key, "error", err)
		return nil, fmt.Errorf("failed to load setting %s.%s: %w", category, key, err)
	}
	return r.mapper.ToDomain(&row), nil
}

func (r *SystemSettingRepository) GetByCategory(ctx context.Context, category string) ([]*setting.SystemSetting, error) {
	var rows []*models.SystemSettingModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("category = ?", category).
		Order("setting_key").
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list settings", "category", category, "error", err)
		return nil, fmt.Errorf("failed to list %s settings: %w", category, err)
	}
	return r.mapper.ToDomainList(rows), nil
}

// Upsert writes the setting and back-fills its ID on first save.
func (r *SystemSettingRepository) Upsert(ctx context.Context, s *setting.SystemSetting) error {
	tx := db.GetTxFromContext(ctx, r.db)
	row := r.mapper.ToModel(s)

	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns(settingColumns),
	}).Create(row).Error; err != nil {
		r.logger.Errorw("failed to save setting", "category", s.Category(), "key", s.Key(), "error", err)
		return fmt.Errorf("failed to save setting %s.%s: %w", s.Category(), s.Key(), err)
	}
	if s.ID() != 0 {
		return nil
	}

	var saved models.SystemSettingModel
	if err := tx.Select("id").Scopes(settingKey(s.Category(), s.Key())).Take(&saved).Error; err != nil {
		return fmt.Errorf("failed to reload setting id: %w", err)
	}
	s.SetID(saved.ID)
	return nil
}
