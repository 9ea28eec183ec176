package domain

type Category string

const (
	CategoryStrong   Category = "Strong"
	CategoryModerate Category = "Moderate"
	CategoryWeak     Category = "Weak"
	CategoryMissing  Category = "Missing"
)

type RoadmapStatus string

const (
	RoadmapTodo       RoadmapStatus = "todo"
	RoadmapInProgress RoadmapStatus = "in_progress"
	RoadmapDone       RoadmapStatus = "done"
)

// ContextKind identifies which assessment flow produced an attempt.
// Daily and practice histories are tracked independently.
type ContextKind string

const (
	ContextDaily      ContextKind = "daily"
	ContextPractice   ContextKind = "practice"
	ContextAssessment ContextKind = "assessment"
)

// ValidContextKinds is the canonical set of accepted context kind strings.
var ValidContextKinds = map[string]bool{
	"daily": true, "practice": true, "assessment": true,
}

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[string]bool{
	"Strong": true, "Moderate": true, "Weak": true, "Missing": true,
}

const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// MasteryThreshold is the proficiency at which dependents become unlockable.
const MasteryThreshold = 80
