package cli

import (
	"errors"

	"github.com/alexanderramin/skillpath/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Catalog    service.CatalogService
	Roadmap    service.RoadmapService
	Attempts   service.AttemptService
	Difficulty service.DifficultyService

	// DefaultUser is used when --user is not given.
	DefaultUser string
}

// NewRootCmd creates the top-level "skillpath" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "skillpath",
		Short:         "Skill-gap roadmap and adaptive difficulty engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("user", app.DefaultUser, "User ID to act as (default from SKILLPATH_USER)")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if userFlag(cmd) == "" {
			return errors.New("no user given: pass --user or set SKILLPATH_USER")
		}
		return nil
	}

	root.AddCommand(
		newCatalogCmd(app),
		newRoleCmd(app),
		newRoadmapCmd(app),
		newAttemptCmd(app),
		newDifficultyCmd(app),
	)

	return root
}

func userFlag(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	return u
}
