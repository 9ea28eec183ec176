package domain

import "time"

// UnlockedPriority is the placeholder priority given to entries created by
// mastery unlock, before the skill has any score of its own.
const UnlockedPriority = 50

// RoadmapEntry tracks one skill a user is working on for a role.
// Progress reflects resource completion and is independent of proficiency.
type RoadmapEntry struct {
	UserID    string
	RoleID    string
	SkillID   string
	Category  Category
	Priority  float64
	Status    RoadmapStatus
	Progress  int
	Seq       int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUnlockedEntry builds the entry inserted when a prerequisite is mastered.
func NewUnlockedEntry(userID, roleID, skillID string, now time.Time) *RoadmapEntry {
	return &RoadmapEntry{
		UserID:    userID,
		RoleID:    roleID,
		SkillID:   skillID,
		Category:  CategoryWeak,
		Priority:  UnlockedPriority,
		Status:    RoadmapTodo,
		Progress:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetProgress clamps pct to [0,100] and derives the status from it.
func (e *RoadmapEntry) SetProgress(pct int, now time.Time) {
	switch {
	case pct < 0:
		pct = 0
	case pct > 100:
		pct = 100
	}
	e.Progress = pct
	switch {
	case pct >= 100:
		e.Status = RoadmapDone
	case pct > 0:
		e.Status = RoadmapInProgress
	default:
		e.Status = RoadmapTodo
	}
	e.UpdatedAt = now
}

// RaiseProgress only moves progress forward. It reports whether anything changed.
func (e *RoadmapEntry) RaiseProgress(pct int, now time.Time) bool {
	if pct <= e.Progress {
		return false
	}
	e.SetProgress(pct, now)
	return true
}

// IsDone reports whether the entry reached the done state.
func (e *RoadmapEntry) IsDone() bool {
	return e.Status == RoadmapDone
}

// AverageProgress is the arithmetic mean of entry progress. Empty roadmaps report 0.
func AverageProgress(entries []*RoadmapEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var total int
	for _, e := range entries {
		total += e.Progress
	}
	return float64(total) / float64(len(entries))
}
