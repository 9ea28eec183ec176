package importer

import (
	"fmt"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// ValidateCatalogSchema checks the catalog schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateCatalogSchema(schema *CatalogSchema) []error {
	var errs []error

	skillIDs := make(map[string]bool)
	errs = append(errs, validateSkills(schema.Skills, skillIDs)...)
	errs = append(errs, validateRoles(schema.Roles, skillIDs)...)
	errs = append(errs, validateDependencies(schema.Dependencies, skillIDs)...)

	return errs
}

func validateSkills(skills []SkillImport, skillIDs map[string]bool) []error {
	var errs []error

	for i, s := range skills {
		prefix := fmt.Sprintf("skills[%d]", i)

		if s.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if skillIDs[s.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, s.ID))
		} else {
			skillIDs[s.ID] = true
		}
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
	}

	return errs
}

func validateRoles(roles []RoleImport, skillIDs map[string]bool) []error {
	var errs []error

	roleIDs := make(map[string]bool)
	for i, r := range roles {
		prefix := fmt.Sprintf("roles[%d]", i)

		if r.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if roleIDs[r.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, r.ID))
		} else {
			roleIDs[r.ID] = true
		}
		if r.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}

		seen := make(map[string]bool, len(r.Skills))
		for j, rs := range r.Skills {
			sp := fmt.Sprintf("%s.skills[%d]", prefix, j)
			switch {
			case rs.SkillID == "":
				errs = append(errs, fmt.Errorf("%s.skill_id is required", sp))
			case !skillIDs[rs.SkillID]:
				errs = append(errs, fmt.Errorf("%s.skill_id: skill %q not found", sp, rs.SkillID))
			case seen[rs.SkillID]:
				errs = append(errs, fmt.Errorf("%s.skill_id: duplicate skill %q", sp, rs.SkillID))
			default:
				seen[rs.SkillID] = true
			}
			if rs.Weight < 0 || rs.Weight > 1 {
				errs = append(errs, fmt.Errorf("%s.weight %.3f out of range 0-1", sp, rs.Weight))
			}
		}
	}

	return errs
}

func validateDependencies(deps []DependencyImport, skillIDs map[string]bool) []error {
	var errs []error

	for i, d := range deps {
		prefix := fmt.Sprintf("dependencies[%d]", i)

		if d.Prerequisite == "" {
			errs = append(errs, fmt.Errorf("%s.prerequisite is required", prefix))
		} else if !skillIDs[d.Prerequisite] {
			errs = append(errs, fmt.Errorf("%s.prerequisite: skill %q not found", prefix, d.Prerequisite))
		}
		if d.Dependent == "" {
			errs = append(errs, fmt.Errorf("%s.dependent is required", prefix))
		} else if !skillIDs[d.Dependent] {
			errs = append(errs, fmt.Errorf("%s.dependent: skill %q not found", prefix, d.Dependent))
		}
		if d.Prerequisite != "" && d.Prerequisite == d.Dependent {
			errs = append(errs, fmt.Errorf("%s: skill %q cannot depend on itself", prefix, d.Prerequisite))
		}
	}

	return errs
}

// ValidateAttemptSchema checks an attempt file before conversion. Skill
// references are not checked against the catalog here.
func ValidateAttemptSchema(schema *AttemptSchema) []error {
	var errs []error

	if schema.UserID == "" {
		errs = append(errs, fmt.Errorf("user_id is required"))
	}
	if !domain.ValidContextKinds[schema.Kind] {
		errs = append(errs, fmt.Errorf("kind: invalid value %q", schema.Kind))
	}
	if schema.DifficultyLevel != 0 && (schema.DifficultyLevel < domain.MinDifficulty || schema.DifficultyLevel > domain.MaxDifficulty) {
		errs = append(errs, fmt.Errorf("difficulty_level %d out of range %d-%d", schema.DifficultyLevel, domain.MinDifficulty, domain.MaxDifficulty))
	}
	if schema.Correct < 0 || schema.Total < 0 {
		errs = append(errs, fmt.Errorf("correct and total must be non-negative"))
	} else if schema.Correct > schema.Total {
		errs = append(errs, fmt.Errorf("correct (%d) must be <= total (%d)", schema.Correct, schema.Total))
	}

	for i, r := range schema.Results {
		prefix := fmt.Sprintf("results[%d]", i)
		if r.Skill == "" {
			errs = append(errs, fmt.Errorf("%s.skill is required", prefix))
		}

		hasPoints := r.PointsEarned != nil || r.MaxPoints != nil
		hasCounts := r.Correct != nil || r.Total != nil
		switch {
		case hasPoints && hasCounts:
			errs = append(errs, fmt.Errorf("%s: give either points or counts, not both", prefix))
		case hasPoints:
			if r.PointsEarned == nil || r.MaxPoints == nil {
				errs = append(errs, fmt.Errorf("%s: points_earned and max_points must be given together", prefix))
			} else if *r.MaxPoints <= 0 || *r.PointsEarned < 0 {
				errs = append(errs, fmt.Errorf("%s: max_points must be positive and points_earned non-negative", prefix))
			}
		case hasCounts:
			if r.Correct == nil || r.Total == nil {
				errs = append(errs, fmt.Errorf("%s: correct and total must be given together", prefix))
			} else if *r.Total <= 0 || *r.Correct < 0 || *r.Correct > *r.Total {
				errs = append(errs, fmt.Errorf("%s: need 0 <= correct <= total and total > 0", prefix))
			}
		default:
			errs = append(errs, fmt.Errorf("%s: points or counts are required", prefix))
		}
	}

	return errs
}
