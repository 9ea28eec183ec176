package app

import "github.com/alexanderramin/skillpath/internal/domain"

// SkillScoreChange is the blended score written for one skill of an attempt.
type SkillScoreChange struct {
	SkillID      string
	Previous     *int
	AttemptScore float64
	Proficiency  int
	Category     domain.Category
}

// IngestResult reports what an attempt submission changed.
type IngestResult struct {
	AttemptID string
	Kind      domain.ContextKind
	XP        int
	Scores    []SkillScoreChange
	// Skipped lists skill IDs that were not in the catalog.
	Skipped []string
	// Refreshed counts roadmap entries whose category or priority was recomputed.
	Refreshed int
	// Unlocked lists skills newly added to the roadmap by mastery.
	Unlocked []string
	// ProgressRaised lists skills whose entry progress moved forward.
	ProgressRaised []string
}

// RoadmapView is a user's roadmap for their target role, ordered by
// priority with insertion order breaking ties.
type RoadmapView struct {
	UserID          string
	RoleID          string
	Entries         []*domain.RoadmapEntry
	AverageProgress float64
	Warnings        []string
}

// DoneCount returns how many entries are complete.
func (v *RoadmapView) DoneCount() int {
	n := 0
	for _, e := range v.Entries {
		if e.IsDone() {
			n++
		}
	}
	return n
}

// DifficultyDecision is the level selected for a user's next attempt.
type DifficultyDecision struct {
	UserID               string
	Kind                 domain.ContextKind
	Level                int
	Label                string
	BasePointsPerCorrect int
	HistorySize          int
}

// CatalogImportResult counts what a catalog import wrote.
type CatalogImportResult struct {
	SkillCount      int
	RoleCount       int
	WeightCount     int
	DependencyCount int
	// CycleMembers lists skills on dependency cycles. Import succeeds
	// but unlock traversal skips the back edges.
	CycleMembers []string
}
