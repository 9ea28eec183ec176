package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/importer"
	"github.com/spf13/cobra"
)

func newAttemptCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attempt",
		Short: "Submit graded attempts and review history",
	}
	cmd.AddCommand(newAttemptSubmitCmd(app), newAttemptHistoryCmd(app), newAttemptShowCmd(app))
	return cmd
}

func newAttemptSubmitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "submit FILE",
		Short: "Ingest a graded attempt from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			schema, err := importer.LoadAttemptSchema(args[0])
			if err != nil {
				return err
			}
			if schema.UserID == "" {
				schema.UserID = userFlag(cmd)
			}
			if errs := importer.ValidateAttemptSchema(schema); len(errs) > 0 {
				return fmt.Errorf("attempt file invalid: %w", errors.Join(errs...))
			}

			attempt := importer.ConvertAttempt(schema, func(ref string) (string, error) {
				return app.Catalog.ResolveSkill(ctx, ref)
			})
			result, err := app.Attempts.Submit(ctx, attempt)
			if result != nil {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatIngest(result))
			}
			return err
		},
	}
}

func newAttemptHistoryCmd(app *App) *cobra.Command {
	var kind domain.ContextKind
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent attempts for one context",
		RunE: func(cmd *cobra.Command, args []string) error {
			attempts, err := app.Attempts.ListRecent(cmd.Context(), userFlag(cmd), kind, limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAttemptHistory(attempts))
			return nil
		},
	}

	addKindFlag(cmd.Flags(), &kind, domain.ContextDaily, domain.ContextDaily, domain.ContextPractice, domain.ContextAssessment)
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum attempts to show")
	return cmd
}

func newAttemptShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ATTEMPT_ID",
		Short: "Show one attempt with its per-skill results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Attempts.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAttempt(a))
			return nil
		},
	}
}
