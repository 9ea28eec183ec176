package formatter

import (
	"fmt"

	"github.com/alexanderramin/skillpath/internal/app"
	"github.com/alexanderramin/skillpath/internal/skillgap"
)

// DifficultyLabelStyled renders "3 Intermediate" colored by level.
func DifficultyLabelStyled(level int) string {
	text := fmt.Sprintf("%d %s", level, skillgap.DifficultyLabel(level))
	switch {
	case level >= 4:
		return StyleRed.Render(text)
	case level == 3:
		return StyleYellow.Render(text)
	default:
		return StyleGreen.Render(text)
	}
}

// FormatDifficulty renders the next difficulty decision.
func FormatDifficulty(d *app.DifficultyDecision) string {
	content := fmt.Sprintf("Level     %s\nPoints    %d per correct answer\nHistory   %s",
		DifficultyLabelStyled(d.Level),
		d.BasePointsPerCorrect,
		Dim(Pluralize(d.HistorySize, "recent attempt")))
	return RenderBox("next "+string(d.Kind)+" test", content) + "\n"
}
