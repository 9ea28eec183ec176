package cli

import (
	"fmt"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage skills, roles and dependencies",
		// Catalog data is shared; no user is needed.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	}
	cmd.AddCommand(newCatalogImportCmd(app), newCatalogRolesCmd(app), newCatalogSkillsCmd(app))
	return cmd
}

func newCatalogImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a catalog JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Catalog.ImportCatalog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalogImport(result))
			return nil
		},
	}
}

func newCatalogRolesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List target roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			roles, err := app.Catalog.ListRoles(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoles(roles))
			return nil
		},
	}
}

func newCatalogSkillsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "List skills and what each one unlocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Catalog.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSkills(c))
			return nil
		},
	}
}
