package migrate

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/estatedesk/estatedesk/internal/infrastructure/config"
	"github.com/estatedesk/estatedesk/internal/infrastructure/database"
	"github.com/estatedesk/estatedesk/internal/infrastructure/migration"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

var (
	env        string
	configPath string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect the embedded database migrations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, m *migration.Migrator, log logger.Interface) error {
				log.Infow("running up migrations", "environment", env)
				if err := m.Up(ctx); err != nil {
					return fmt.Errorf("migration failed: %w", err)
				}
				log.Infow("migrations completed successfully")
				return nil
			})
		},
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, m *migration.Migrator, log logger.Interface) error {
				log.Infow("running down migrations", "environment", env, "steps", steps)
				if err := m.Down(ctx, steps); err != nil {
					return fmt.Errorf("down migration failed: %w", err)
				}
				log.Infow("down migration completed successfully")
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, m *migration.Migrator, _ logger.Interface) error {
				version, err := m.Version(ctx)
				if err != nil {
					return err
				}
				statuses, err := m.Status(ctx)
				if err != nil {
					return err
				}
				printStatus(cmd.OutOrStdout(), version, statuses)
				return nil
			})
		},
	}
}

func printStatus(out io.Writer, version int64, statuses []migration.Status) {
	fmt.Fprintf(out, "Migration Status:\n  Environment:     %s\n  Current Version: %d\n\n", env, version)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tAPPLIED\tAPPLIED AT\tSCRIPT")
	for _, s := range statuses {
		appliedAt := "-"
		if s.Applied && !s.AppliedAt.IsZero() {
			appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "%d\t%t\t%s\t%s\n", s.Version, s.Applied, appliedAt, s.Name)
	}
	_ = w.Flush()
}

func withMigrator(ctx context.Context, fn func(context.Context, *migration.Migrator, logger.Interface) error) error {
	cfg, err := config.Load(configPath, "")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger().Named("migration")

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	driver := "mysql"
	if cfg.Database.IsSQLite() {
		driver = "sqlite"
	}
	m, err := migration.NewMigrator(database.Get(), driver, log)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, m, log)
}

