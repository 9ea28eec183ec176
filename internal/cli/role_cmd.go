package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRoleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "role",
		Short: "Choose the target role",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "set ROLE_ID",
		Short: "Set the user's target role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := userFlag(cmd)
			if err := app.Roadmap.SetRole(cmd.Context(), user, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Target role for %s set to %s\n", user, args[0])
			return nil
		},
	})
	return cmd
}
