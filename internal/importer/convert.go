package importer

import (
	"time"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/skillgap"
	"github.com/google/uuid"
)

// ConvertCatalog transforms a validated CatalogSchema into a domain catalog.
// Call ValidateCatalogSchema first; ConvertCatalog assumes the schema is valid.
func ConvertCatalog(schema *CatalogSchema) *domain.Catalog {
	c := &domain.Catalog{}

	for _, s := range schema.Skills {
		c.Skills = append(c.Skills, domain.Skill{ID: s.ID, Name: s.Name, Category: s.Category})
	}
	for _, r := range schema.Roles {
		c.Roles = append(c.Roles, domain.Role{ID: r.ID, Name: r.Name})
		for i, rs := range r.Skills {
			c.Weights = append(c.Weights, domain.RoleSkillWeight{
				RoleID:  r.ID,
				SkillID: rs.SkillID,
				Weight:  rs.Weight,
				Order:   i,
			})
		}
	}
	for _, d := range schema.Dependencies {
		c.Dependencies = append(c.Dependencies, domain.SkillDependency{
			PrerequisiteSkillID: d.Prerequisite,
			DependentSkillID:    d.Dependent,
		})
	}

	return c
}

// ConvertAttempt transforms a validated AttemptSchema into a domain attempt.
// resolve maps each skill reference to a catalog ID; references it cannot
// resolve are kept as given so ingest reports them as skipped.
func ConvertAttempt(schema *AttemptSchema, resolve func(ref string) (string, error)) *domain.Attempt {
	level := schema.DifficultyLevel
	if level == 0 {
		level = domain.MinDifficulty
	}
	kind := domain.ContextKind(schema.Kind)

	a := &domain.Attempt{
		ID:              uuid.New().String(),
		UserID:          schema.UserID,
		Kind:            kind,
		DifficultyLevel: level,
		CorrectCount:    schema.Correct,
		TotalCount:      schema.Total,
		CreatedAt:       time.Now().UTC(),
	}

	for _, r := range schema.Results {
		skillID := r.Skill
		if resolve != nil {
			if id, err := resolve(r.Skill); err == nil {
				skillID = id
			}
		}

		var earned, maxPoints float64
		if r.PointsEarned != nil {
			earned, maxPoints = *r.PointsEarned, *r.MaxPoints
		} else {
			earned, maxPoints = countPoints(kind, level, *r.Correct, *r.Total)
		}
		a.Results = append(a.Results, domain.SkillResult{SkillID: skillID, PointsEarned: earned, MaxPoints: maxPoints})
	}

	return a
}

// countPoints converts question counts into points. Practice tests weight
// correct answers by the level's base value; other kinds score each
// correct answer as a full 100.
func countPoints(kind domain.ContextKind, level, correct, total int) (earned, maxPoints float64) {
	if kind == domain.ContextPractice {
		return skillgap.QuestionPoints(level, correct, total)
	}
	return float64(correct * 100), float64(total * 100)
}
