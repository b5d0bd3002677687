package admin

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	adminUsecases "github.com/estatedesk/estatedesk/internal/application/admin/usecases"
	"github.com/estatedesk/estatedesk/internal/infrastructure/auth"
	"github.com/estatedesk/estatedesk/internal/infrastructure/config"
	"github.com/estatedesk/estatedesk/internal/infrastructure/database"
	"github.com/estatedesk/estatedesk/internal/infrastructure/repository"
	"github.com/estatedesk/estatedesk/internal/shared/authorization"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

var configPath string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative commands",
		Long:  `Bootstrap staff accounts and configuration files.`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newCreateAdminCommand(),
		newInitConfigCommand(),
	)

	return cmd
}

type createAdminOptions struct {
	name     string
	username string
	password string
	contact  string
	email    string
	role     string
}

func newCreateAdminCommand() *cobra.Command {
	opts := &createAdminOptions{}
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a staff account",
		Long:  `Create a staff account directly in the database. Use it to bootstrap the first Super Admin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreateAdmin(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "Display name (required)")
	cmd.Flags().StringVar(&opts.username, "username", "", "Login username (required)")
	cmd.Flags().StringVar(&opts.password, "password", "", "Password, at least 8 characters (required)")
	cmd.Flags().StringVar(&opts.contact, "contact", "", "WhatsApp contact handle")
	cmd.Flags().StringVar(&opts.email, "email", "", "E-mail address for sign-off notices")
	cmd.Flags().StringVar(&opts.role, "role", authorization.RoleSuperAdmin.Label(), "Role label")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runCreateAdmin(cmd *cobra.Command, opts *createAdminOptions) error {
	cfg, err := config.Load(configPath, "")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger().Named("admin")

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	uc := adminUsecases.NewCreateAdminUseCase(
		repository.NewAdminRepository(database.Get()),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		log,
	)
	created, err := uc.Execute(cmd.Context(), adminUsecases.CreateAdminCommand{
		Name:     strings.TrimSpace(opts.name),
		Username: opts.username,
		Password: opts.password,
		Contact:  opts.contact,
		Email:    opts.email,
		Role:     opts.role,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s %q (id %d)\n", created.RoleLabel, created.Username, created.ID)
	return nil
}

func newInitConfigCommand() *cobra.Command {
	var (
		output    string
		overwrite bool
	)
	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write a config file populated with defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Defaults()
			if err != nil {
				return err
			}
			if err := config.WriteFile(cfg, output, overwrite); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "configs/config.yaml", "Destination path")
	cmd.Flags().BoolVar(&overwrite, "force", false, "Replace an existing file")

	return cmd
}
