package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the taskboard command tree. Running it without a
// subcommand serves the API.
func NewRootCmd() *cobra.Command {
	serveCmd := newServeCmd()

	rootCmd := &cobra.Command{
		Use:   "taskboard",
		Short: "Per-user task tracking API",
		Long: `taskboard serves a JSON API for registering users, logging in with
short-lived tokens and managing each user's own task list.

Configuration is read from the environment (DATABASE_URL, JWT_SECRET,
FRONTEND_URL, PORT, ...).`,
		Args:         cobra.NoArgs,
		RunE:         serveCmd.RunE,
		SilenceUsage: true,
	}
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newGenSecretCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
