// Package migration applies the versioned SQL schema with goose. Scripts are
// embedded per dialect so the binary carries its own schema.
package migration

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/estatedesk/estatedesk/internal/infrastructure/persistence/models"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

//go:embed scripts/mysql/*.sql scripts/sqlite/*.sql
var scripts embed.FS

// Status is one migration script and whether it has been applied.
type Status struct {
	Version   int64
	Name      string
	Applied   bool
	AppliedAt time.Time
}

type Migrator struct {
	provider *goose.Provider
	logger   logger.Interface
}

// NewMigrator binds the embedded scripts for driver ("mysql" or "sqlite")
// to db.
func NewMigrator(db *gorm.DB, driver string, log logger.Interface) (*Migrator, error) {
	dialect, dir, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	fsys, err := fs.Sub(scripts, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration scripts: %w", err)
	}

	provider, err := goose.NewProvider(dialect, sqlDB, fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return &Migrator{
		provider: provider,
		logger:   log.With("component", "migration.goose", "driver", driver),
	}, nil
}

func dialectFor(driver string) (goose.Dialect, string, error) {
	switch driver {
	case "", "mysql":
		return goose.DialectMySQL, "scripts/mysql", nil
	case "sqlite":
		return goose.DialectSQLite3, "scripts/sqlite", nil
	default:
		return "", "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	from, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		m.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	results, err := m.provider.Up(ctx)
	if err != nil {
		m.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	for _, r := range results {
		m.logger.Infow("migration applied", "version", r.Source.Version, "duration", r.Duration)
	}

	to, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	m.logger.Infow("migrations completed", "from_version", from, "to_version", to, "applied", len(results))
	return nil
}

// Down rolls back up to steps migrations. It stops early at version zero.
func (m *Migrator) Down(ctx context.Context, steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}
	for i := 0; i < steps; i++ {
		version, err := m.provider.GetDBVersion(ctx)
		if err != nil {
			return fmt.Errorf("failed to get current version: %w", err)
		}
		if version == 0 {
			m.logger.Infow("nothing left to roll back")
			return nil
		}
		result, err := m.provider.Down(ctx)
		if err != nil {
			m.logger.Errorw("down migration failed", "error", err, "version", version)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
		m.logger.Infow("migration rolled back", "version", result.Source.Version)
	}
	return nil
}

func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

func (m *Migrator) Status(ctx context.Context) ([]Status, error) {
	states, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	out := make([]Status, 0, len(states))
	for _, s := range states {
		out = append(out, Status{
			Version:   s.Source.Version,
			Name:      s.Source.Path,
			Applied:   s.State == goose.StateApplied,
			AppliedAt: s.AppliedAt,
		})
	}
	return out, nil
}

// Models lists every table the scripts create, in creation order.
func Models() []any {
	return []any{
		&models.AdminModel{},
		&models.PropertyModel{},
		&models.TenantModel{},
		&models.SystemSettingModel{},
		&models.TicketModel{},
		&models.TicketUpdateModel{},
		&models.AdminChangeLogModel{},
		&models.TicketMediaModel{},
		&models.JobCardModel{},
		&models.JobCardMediaModel{},
		&models.JobCardSignoffModel{},
	}
}
