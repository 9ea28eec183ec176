package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/skillpath/internal/db"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// CatalogOption configures a test catalog.
type CatalogOption func(*domain.Catalog)

// WithSkills adds skills whose ID doubles as the name.
func WithSkills(ids ...string) CatalogOption {
	return func(c *domain.Catalog) {
		for _, id := range ids {
			c.Skills = append(c.Skills, domain.Skill{ID: id, Name: id, Category: "general"})
		}
	}
}

// WithRole adds a role and its weighted skills in the given order.
// weights alternate skill ID and weight: "go", 0.9, "sql", 0.5.
func WithRole(roleID string, weights ...any) CatalogOption {
	return func(c *domain.Catalog) {
		c.Roles = append(c.Roles, domain.Role{ID: roleID, Name: roleID})
		for i := 0; i+1 < len(weights); i += 2 {
			c.Weights = append(c.Weights, domain.RoleSkillWeight{
				RoleID:  roleID,
				SkillID: weights[i].(string),
				Weight:  weights[i+1].(float64),
				Order:   i / 2,
			})
		}
	}
}

// WithEdge adds a prerequisite -> dependent edge.
func WithEdge(prerequisite, dependent string) CatalogOption {
	return func(c *domain.Catalog) {
		c.Dependencies = append(c.Dependencies, domain.SkillDependency{
			PrerequisiteSkillID: prerequisite,
			DependentSkillID:    dependent,
		})
	}
}

func NewTestCatalog(opts ...CatalogOption) *domain.Catalog {
	c := &domain.Catalog{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SeedCatalog writes a catalog with raw SQL so repository tests do not
// depend on the repository under test.
func SeedCatalog(t *testing.T, conn db.DBTX, c *domain.Catalog) {
	t.Helper()
	ctx := context.Background()
	for _, s := range c.Skills {
		_, err := conn.ExecContext(ctx, `INSERT INTO skills (id, name, category) VALUES (?, ?, ?)`, s.ID, s.Name, s.Category)
		require.NoError(t, err)
	}
	for _, r := range c.Roles {
		_, err := conn.ExecContext(ctx, `INSERT INTO roles (id, name) VALUES (?, ?)`, r.ID, r.Name)
		require.NoError(t, err)
	}
	for _, w := range c.Weights {
		_, err := conn.ExecContext(ctx,
			`INSERT INTO role_skills (role_id, skill_id, weight, order_index) VALUES (?, ?, ?, ?)`,
			w.RoleID, w.SkillID, w.Weight, w.Order)
		require.NoError(t, err)
	}
	for _, d := range c.Dependencies {
		_, err := conn.ExecContext(ctx,
			`INSERT INTO skill_dependencies (prerequisite_skill_id, dependent_skill_id) VALUES (?, ?)`,
			d.PrerequisiteSkillID, d.DependentSkillID)
		require.NoError(t, err)
	}
}

// Attempt options
type AttemptOption func(*domain.Attempt)

func WithKind(k domain.ContextKind) AttemptOption {
	return func(a *domain.Attempt) {
		a.Kind = k
	}
}

func WithLevel(level int) AttemptOption {
	return func(a *domain.Attempt) {
		a.DifficultyLevel = level
	}
}

func WithCounts(correct, total int) AttemptOption {
	return func(a *domain.Attempt) {
		a.CorrectCount = correct
		a.TotalCount = total
	}
}

// WithSkillScore adds a result whose attempt score equals pct.
func WithSkillScore(skillID string, pct float64) AttemptOption {
	return func(a *domain.Attempt) {
		a.Results = append(a.Results, domain.SkillResult{SkillID: skillID, PointsEarned: pct, MaxPoints: 100})
	}
}

func WithCreatedAt(at time.Time) AttemptOption {
	return func(a *domain.Attempt) {
		a.CreatedAt = at
	}
}

func NewTestAttempt(userID string, opts ...AttemptOption) *domain.Attempt {
	a := &domain.Attempt{
		ID:              uuid.New().String(),
		UserID:          userID,
		Kind:            domain.ContextPractice,
		DifficultyLevel: 1,
		CorrectCount:    0,
		TotalCount:      0,
		CreatedAt:       time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
