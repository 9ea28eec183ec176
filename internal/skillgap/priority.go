package skillgap

import (
	"math"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// Priority combines need, role weight and dependency bonus into a single
// remediation score, rounded to three decimal places. Higher is more urgent.
func Priority(proficiency, roleWeight float64, bonus int) float64 {
	raw := float64(NeedRank(Classify(proficiency))) * roleWeight * float64(bonus)
	return round3(raw)
}

// Assessment is the classification of one role skill for a user.
type Assessment struct {
	SkillID     string
	Proficiency int
	Weight      float64
	Bonus       int
	Category    domain.Category
	Priority    float64
}

// Assess classifies and prioritises every weighted skill of a role, in the
// order the weights are given. Skills without a score count as 0.
func Assess(weights []domain.RoleSkillWeight, scores map[string]int, g *Graph) []Assessment {
	roleSet := make(map[string]bool, len(weights))
	for _, w := range weights {
		roleSet[w.SkillID] = true
	}

	out := make([]Assessment, 0, len(weights))
	for _, w := range weights {
		p := scores[w.SkillID]
		bonus := g.Bonus(w.SkillID, roleSet)
		out = append(out, Assessment{
			SkillID:     w.SkillID,
			Proficiency: p,
			Weight:      w.Weight,
			Bonus:       bonus,
			Category:    Classify(float64(p)),
			Priority:    Priority(float64(p), w.Weight, bonus),
		})
	}
	return out
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
