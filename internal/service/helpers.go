package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/skillpath/internal/app"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/repository"
	"github.com/alexanderramin/skillpath/internal/skillgap"
)

// persistenceErr marks a store failure as retryable for the caller.
func persistenceErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", app.ErrPersistence, op, err)
}

// targetRole returns the user's role ID, or app.ErrNoRoleSelected.
func targetRole(ctx context.Context, roles repository.UserRoleRepo, userID string) (string, error) {
	ur, err := roles.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("user %q: %w", userID, app.ErrNoRoleSelected)
	}
	if err != nil {
		return "", persistenceErr("loading target role", err)
	}
	return ur.RoleID, nil
}

// loadSnapshot reads the catalog once for a whole computation.
func loadSnapshot(ctx context.Context, catalog repository.CatalogRepo) (*domain.Catalog, error) {
	c, err := catalog.Snapshot(ctx)
	if err != nil {
		return nil, persistenceErr("loading catalog", err)
	}
	return c, nil
}

// buildGraph builds the dependency graph of a snapshot and logs any cycles
// as a data quality warning.
func buildGraph(ctx context.Context, c *domain.Catalog, logger *slog.Logger) (*skillgap.Graph, []string) {
	g := skillgap.NewGraph(c.Dependencies)
	cycle := g.CycleMembers()
	if len(cycle) > 0 {
		logger.WarnContext(ctx, "dependency cycle in catalog", "skills", cycle)
	}
	return g, cycle
}

func cycleWarning(cycle []string) string {
	return fmt.Sprintf("dependency cycle between skills %v", cycle)
}

// roleSkillSet maps each weighted skill of a role to its weight.
func roleSkillSet(weights []domain.RoleSkillWeight) (map[string]float64, map[string]bool) {
	byID := make(map[string]float64, len(weights))
	set := make(map[string]bool, len(weights))
	for _, w := range weights {
		byID[w.SkillID] = w.Weight
		set[w.SkillID] = true
	}
	return byID, set
}

func formatValidationErrors(what string, errs []error) error {
	msg := fmt.Sprintf("%s validation failed (%d errors):", what, len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
