package cli

import (
	"fmt"

	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/spf13/cobra"
)

func newGenSecretCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "gen-secret",
		Short: "Print a random value suitable for JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < cryptox.TokenSize256 {
				return fmt.Errorf("size must be at least %d bytes", cryptox.TokenSize256)
			}

			secret, err := cryptox.GenerateToken(size)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "bytes", cryptox.TokenSize256, "Number of random bytes")
	return cmd
}
