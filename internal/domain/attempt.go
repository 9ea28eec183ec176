package domain

import (
	"fmt"
	"time"
)

// SkillResult is one skill's contribution to a single graded attempt.
// PointsEarned and MaxPoints are summed across that skill's questions,
// with every question worth up to 100 points.
type SkillResult struct {
	SkillID      string
	PointsEarned float64
	MaxPoints    float64
}

// Attempt is a graded assessment instance.
type Attempt struct {
	ID              string
	UserID          string
	Kind            ContextKind
	DifficultyLevel int
	CorrectCount    int
	TotalCount      int
	XP              int
	Results         []SkillResult
	CreatedAt       time.Time
}

// ScorePct returns the share of correct answers as a percentage.
// An attempt without questions scores 0.
func (a *Attempt) ScorePct() float64 {
	if a.TotalCount <= 0 {
		return 0
	}
	return float64(a.CorrectCount) / float64(a.TotalCount) * 100
}

// Outcome reduces the attempt to the fields the difficulty controller reads.
func (a *Attempt) Outcome() AttemptOutcome {
	return AttemptOutcome{ScorePct: a.ScorePct(), DifficultyLevel: a.DifficultyLevel}
}

// Validate checks structural invariants. Unknown skill IDs are not an
// error here; the catalog decides that.
func (a *Attempt) Validate() error {
	if a.UserID == "" {
		return fmt.Errorf("user ID is required")
	}
	if !ValidContextKinds[string(a.Kind)] {
		return fmt.Errorf("invalid context kind %q", a.Kind)
	}
	if a.DifficultyLevel < MinDifficulty || a.DifficultyLevel > MaxDifficulty {
		return fmt.Errorf("difficulty level %d out of range %d-%d", a.DifficultyLevel, MinDifficulty, MaxDifficulty)
	}
	if a.CorrectCount < 0 || a.TotalCount < 0 {
		return fmt.Errorf("correct and total counts must be non-negative")
	}
	if a.CorrectCount > a.TotalCount {
		return fmt.Errorf("correct count %d exceeds total count %d", a.CorrectCount, a.TotalCount)
	}
	seen := make(map[string]bool, len(a.Results))
	for i, r := range a.Results {
		if r.SkillID == "" {
			return fmt.Errorf("results[%d]: skill ID is required", i)
		}
		if seen[r.SkillID] {
			return fmt.Errorf("results[%d]: duplicate skill %q", i, r.SkillID)
		}
		seen[r.SkillID] = true
		if r.MaxPoints <= 0 {
			return fmt.Errorf("results[%d]: max points must be positive", i)
		}
		if r.PointsEarned < 0 {
			return fmt.Errorf("results[%d]: points earned must be non-negative", i)
		}
	}
	return nil
}

// AttemptOutcome is a single history point for difficulty adaptation.
type AttemptOutcome struct {
	ScorePct        float64
	DifficultyLevel int
}
