package skillgap

import "github.com/alexanderramin/skillpath/internal/domain"

// DifficultyPolicy selects how the reference level is read from history.
type DifficultyPolicy int

const (
	// PolicyRatchet uses the highest level seen in the window, so a single
	// easy attempt cannot lower the ceiling. Used by daily tests.
	PolicyRatchet DifficultyPolicy = iota
	// PolicyLastValue uses the level of the most recent attempt.
	// Used by practice tests.
	PolicyLastValue
)

const (
	promoteAtPct = 80.0
	demoteAtPct  = 40.0
)

// DefaultWindow is how many recent attempts feed a difficulty decision.
const DefaultWindow = 5

var difficultyLabels = map[int]string{
	1: "Easy",
	2: "Medium",
	3: "Intermediate",
	4: "Hard",
	5: "Expert",
}

// DifficultyLabel returns the display label for a level.
func DifficultyLabel(level int) string {
	return difficultyLabels[clampLevel(level)]
}

// BasePoints is the per-correct-answer point value for a practice test level.
func BasePoints(level int) int {
	switch clampLevel(level) {
	case 1, 2:
		return 50
	case 3:
		return 75
	default:
		return 100
	}
}

// Decision is the outcome of a difficulty computation.
type Decision struct {
	Level                int
	Label                string
	BasePointsPerCorrect int
}

// DecisionFor expands a level into its full decision.
func DecisionFor(level int) Decision {
	level = clampLevel(level)
	return Decision{
		Level:                level,
		Label:                DifficultyLabel(level),
		BasePointsPerCorrect: BasePoints(level),
	}
}

// NextDifficulty derives the next level from history ordered most recent
// first. The whole slice is the window; callers load at most the window
// size from storage.
func NextDifficulty(history []domain.AttemptOutcome, policy DifficultyPolicy) int {
	if len(history) == 0 {
		return domain.MinDifficulty
	}

	var sum float64
	for _, h := range history {
		sum += h.ScorePct
	}
	mean := sum / float64(len(history))

	ref := referenceLevel(history, policy)
	switch {
	case mean >= promoteAtPct:
		return min(domain.MaxDifficulty, ref+1)
	case mean <= demoteAtPct:
		return max(domain.MinDifficulty, ref-1)
	default:
		return ref
	}
}

func referenceLevel(history []domain.AttemptOutcome, policy DifficultyPolicy) int {
	if policy == PolicyLastValue {
		return clampLevel(history[0].DifficultyLevel)
	}
	highest := domain.MinDifficulty
	for _, h := range history {
		if h.DifficultyLevel > highest {
			highest = h.DifficultyLevel
		}
	}
	return clampLevel(highest)
}

func clampLevel(level int) int {
	return max(domain.MinDifficulty, min(domain.MaxDifficulty, level))
}
