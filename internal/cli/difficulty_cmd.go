package cli

import (
	"fmt"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/spf13/cobra"
)

func newDifficultyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "difficulty",
		Short: "Adaptive difficulty for daily and practice tests",
	}

	var kind domain.ContextKind
	next := &cobra.Command{
		Use:   "next",
		Short: "Show the level for the next test",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.Difficulty.Next(cmd.Context(), userFlag(cmd), kind)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDifficulty(d))
			return nil
		},
	}
	addKindFlag(next.Flags(), &kind, domain.ContextDaily, domain.ContextDaily, domain.ContextPractice)

	cmd.AddCommand(next)
	return cmd
}
