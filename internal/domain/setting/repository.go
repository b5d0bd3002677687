package setting

import "context"

// Repository persists system settings.
type Repository interface {
	// GetByKey returns ErrSettingNotFound when the setting does not exist.
	GetByKey(ctx context.Context, category, key string) (*SystemSetting, error)
	GetByCategory(ctx context.Context, category string) ([]*SystemSetting, error)
	Upsert(ctx context.Context, setting *SystemSetting) error
}
