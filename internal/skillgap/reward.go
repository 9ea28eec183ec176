package skillgap

// DailyXP is the flat reward for a daily test. It ignores difficulty and
// per-question point values.
func DailyXP(correct int) int {
	return 50 + 5*correct
}

// PracticePoints is the reward for a practice test: each correct answer
// earns the base value of the test's difficulty level.
func PracticePoints(level, correct int) int {
	return correct * BasePoints(level)
}

// QuestionPoints returns the earned and maximum points for one skill's
// questions in a practice test, on the 100-point per-question scale that
// AttemptScore expects.
func QuestionPoints(level, correct, total int) (earned, maxPoints float64) {
	return float64(PracticePoints(level, correct)), float64(total * 100)
}
