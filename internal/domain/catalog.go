package domain

type Skill struct {
	ID       string
	Name     string
	Category string
}

type Role struct {
	ID   string
	Name string
}

// RoleSkillWeight is the importance of a skill to a role, in [0,1].
// Order preserves catalog order and breaks priority ties downstream.
type RoleSkillWeight struct {
	RoleID  string
	SkillID string
	Weight  float64
	Order   int
}

// SkillDependency is a directed edge: mastering Prerequisite unlocks Dependent.
type SkillDependency struct {
	PrerequisiteSkillID string
	DependentSkillID    string
}

// Catalog is a read-only snapshot of reference data passed into engine calls.
type Catalog struct {
	Skills       []Skill
	Roles        []Role
	Weights      []RoleSkillWeight
	Dependencies []SkillDependency
}

// HasSkill reports whether the catalog contains the given skill ID.
func (c *Catalog) HasSkill(id string) bool {
	for _, s := range c.Skills {
		if s.ID == id {
			return true
		}
	}
	return false
}

// SkillSet returns the catalog skill IDs as a lookup set.
func (c *Catalog) SkillSet() map[string]bool {
	set := make(map[string]bool, len(c.Skills))
	for _, s := range c.Skills {
		set[s.ID] = true
	}
	return set
}

// RoleWeights returns the weights for a role, in catalog order.
func (c *Catalog) RoleWeights(roleID string) []RoleSkillWeight {
	var out []RoleSkillWeight
	for _, w := range c.Weights {
		if w.RoleID == roleID {
			out = append(out, w)
		}
	}
	return out
}
