package skillgap

import "math"

// SmoothingFactor is the weight given to the newest attempt when blending.
const SmoothingFactor = 0.3

// Blend folds an attempt score into the prior proficiency using an
// exponential moving average. A nil prior means the user has never been
// scored on the skill, so the attempt score is taken as-is.
// The result is rounded and clamped to [0,100].
func Blend(prior *int, attemptScore float64) int {
	if prior == nil {
		return clampPct(math.Round(attemptScore))
	}
	blended := float64(*prior)*(1-SmoothingFactor) + attemptScore*SmoothingFactor
	return clampPct(math.Round(blended))
}

// AttemptScore is the mean per-question value for one skill in one attempt,
// on a 100-point per-question scale.
func AttemptScore(pointsEarned, maxPoints float64) float64 {
	if maxPoints <= 0 {
		return 0
	}
	score := pointsEarned / maxPoints * 100
	return math.Max(0, math.Min(100, score))
}

func clampPct(v float64) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return int(v)
}
