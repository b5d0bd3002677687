package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/estatedesk/estatedesk/internal/interfaces/cli/admin"
	"github.com/estatedesk/estatedesk/internal/interfaces/cli/migrate"
	"github.com/estatedesk/estatedesk/internal/interfaces/cli/server"
)

//go:generate swag init -g cmd/estatedesk/main.go -d ../../ -o ../../docs

// @title EstateDesk API
// @version 1.0
// @description Property maintenance desk: tenant tickets, job cards and reports.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	rootCmd := &cobra.Command{
		Use:          "estatedesk",
		Short:        "EstateDesk - property maintenance CRM",
		Long:         `EstateDesk tracks tenant maintenance tickets, job cards and sign-offs, with WhatsApp intake and a PIN-protected public job card view.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
