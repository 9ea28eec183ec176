package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// CatalogSchema is the top-level JSON structure for catalog import.
type CatalogSchema struct {
	Skills       []SkillImport      `json:"skills"`
	Roles        []RoleImport       `json:"roles"`
	Dependencies []DependencyImport `json:"dependencies,omitempty"`
}

// SkillImport defines a catalog skill.
type SkillImport struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// RoleImport defines a target role. Skills are listed in display order.
type RoleImport struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Skills []RoleSkillImport `json:"skills"`
}

// RoleSkillImport weights one skill for a role. Weight is in [0,1].
type RoleSkillImport struct {
	SkillID string  `json:"skill_id"`
	Weight  float64 `json:"weight"`
}

// DependencyImport declares that prerequisite should be learned before dependent.
type DependencyImport struct {
	Prerequisite string `json:"prerequisite"`
	Dependent    string `json:"dependent"`
}

// AttemptSchema is the JSON structure of a graded attempt submitted from a file.
type AttemptSchema struct {
	UserID          string              `json:"user_id"`
	Kind            string              `json:"kind"`
	DifficultyLevel int                 `json:"difficulty_level"`
	Correct         int                 `json:"correct"`
	Total           int                 `json:"total"`
	Results         []SkillResultImport `json:"results"`
}

// SkillResultImport is one skill's result. Either points or counts are given:
// points_earned/max_points directly, or correct/total question counts that
// are converted using the attempt's difficulty level.
type SkillResultImport struct {
	Skill        string   `json:"skill"`
	PointsEarned *float64 `json:"points_earned,omitempty"`
	MaxPoints    *float64 `json:"max_points,omitempty"`
	Correct      *int     `json:"correct,omitempty"`
	Total        *int     `json:"total,omitempty"`
}

// LoadCatalogSchema reads and parses a catalog JSON file.
func LoadCatalogSchema(path string) (*CatalogSchema, error) {
	var schema CatalogSchema
	if err := loadJSON(path, &schema); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return &schema, nil
}

// LoadAttemptSchema reads and parses an attempt JSON file.
func LoadAttemptSchema(path string) (*AttemptSchema, error) {
	var schema AttemptSchema
	if err := loadJSON(path, &schema); err != nil {
		return nil, fmt.Errorf("parsing attempt file: %w", err)
	}
	return &schema, nil
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
