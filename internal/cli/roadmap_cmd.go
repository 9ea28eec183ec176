package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/skillpath/internal/app"
	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRoadmapCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Generate and inspect the skill roadmap",
	}
	cmd.AddCommand(
		newRoadmapGenerateCmd(a),
		newRoadmapShowCmd(a),
		newRoadmapProgressCmd(a),
	)
	return cmd
}

func newRoadmapGenerateCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Recompute gaps and priorities for the target role",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.Roadmap.Generate(cmd.Context(), userFlag(cmd))
			if err != nil {
				return withRoleHint(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoadmap(view))
			return nil
		},
	}
}

func newRoadmapShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the roadmap ranked by priority",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.Roadmap.Snapshot(cmd.Context(), userFlag(cmd))
			if err != nil {
				return withRoleHint(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoadmap(view))
			return nil
		},
	}
}

func newRoadmapProgressCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress SKILL PERCENT",
		Short: "Record resource completion for a roadmap skill",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pct, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid percent %q", args[1])
			}
			skillID, err := a.Catalog.ResolveSkill(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			entry, err := a.Roadmap.SetProgress(cmd.Context(), userFlag(cmd), skillID, pct)
			if err != nil {
				return withRoleHint(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEntry(entry))
			return nil
		},
	}
}

func withRoleHint(err error) error {
	if errors.Is(err, app.ErrNoRoleSelected) {
		return fmt.Errorf("%w (run 'skillpath role set ROLE_ID')", err)
	}
	return err
}
