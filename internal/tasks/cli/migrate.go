package cli

import (
	"fmt"

	"github.com/aussiebroadwan/taskboard/internal/tasks/app"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var databaseURL string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply store migrations and indexes, then exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.LoadConfig()
			if databaseURL != "" {
				cfg.DatabaseURL = databaseURL
			}

			if err := app.Migrate(cmd.Context(), cfg); err != nil {
				return err
			}

			driver, _ := app.DriverFor(cfg.DatabaseURL)
			fmt.Fprintf(cmd.OutOrStdout(), "%s store is up to date\n", driver)
			return nil
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", "", "Store connection string (env: DATABASE_URL)")
	return cmd
}
