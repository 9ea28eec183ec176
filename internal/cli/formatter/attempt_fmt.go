package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpath/internal/app"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/skillgap"
)

// FormatIngest renders the outcome of an attempt submission.
func FormatIngest(r *app.IngestResult) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s attempt recorded", r.Kind)))
	b.WriteString("\n")
	b.WriteString(Dim("id " + r.AttemptID))
	b.WriteString("\n")

	if r.XP > 0 {
		label := "XP"
		if r.Kind == domain.ContextPractice {
			label = "points"
		}
		fmt.Fprintf(&b, "%s %s\n\n", StyleGreen.Render(fmt.Sprintf("+%d", r.XP)), label)
	}

	if len(r.Scores) > 0 {
		rows := make([][]string, 0, len(r.Scores))
		for _, s := range r.Scores {
			before := Dim("new")
			if s.Previous != nil {
				before = fmt.Sprintf("%d", *s.Previous)
			}
			rows = append(rows, []string{
				s.SkillID,
				fmt.Sprintf("%.1f", s.AttemptScore),
				before,
				Bold(fmt.Sprintf("%d", s.Proficiency)),
				CategoryIndicator(s.Category),
			})
		}
		b.WriteString(Table{
			Headers: []string{"SKILL", "SCORE", "BEFORE", "NOW", "GAP"},
			Rows:    rows,
			Right:   map[int]bool{1: true, 2: true, 3: true},
		}.Render())
	}

	if len(r.Unlocked) > 0 {
		fmt.Fprintf(&b, "\n%s %s\n", StyleBlue.Render("Unlocked:"), strings.Join(r.Unlocked, ", "))
	}
	if len(r.ProgressRaised) > 0 {
		fmt.Fprintf(&b, "%s %s\n", StyleBlue.Render("Progress updated:"), strings.Join(r.ProgressRaised, ", "))
	}
	if len(r.Skipped) > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("! skipped unknown %s: %s",
			Pluralize(len(r.Skipped), "skill"), strings.Join(r.Skipped, ", "))))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatAttemptHistory renders recent attempts, most recent first.
func FormatAttemptHistory(attempts []*domain.Attempt) string {
	if len(attempts) == 0 {
		return Dim("No attempts yet.") + "\n"
	}
	rows := make([][]string, 0, len(attempts))
	for _, a := range attempts {
		rows = append(rows, []string{
			a.CreatedAt.Local().Format("2006-01-02 15:04"),
			string(a.Kind),
			DifficultyLabelStyled(a.DifficultyLevel),
			fmt.Sprintf("%d/%d", a.CorrectCount, a.TotalCount),
			fmt.Sprintf("%.0f%%", a.ScorePct()),
			fmt.Sprintf("%d", a.XP),
		})
	}
	return Table{
		Headers: []string{"WHEN", "KIND", "LEVEL", "CORRECT", "SCORE", "XP"},
		Rows:    rows,
		Right:   map[int]bool{3: true, 4: true, 5: true},
	}.Render()
}

// FormatAttempt renders one attempt with its per-skill breakdown.
func FormatAttempt(a *domain.Attempt) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s attempt %s", a.Kind, a.ID)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "When     %s\n", a.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Level    %s\n", DifficultyLabelStyled(a.DifficultyLevel))
	fmt.Fprintf(&b, "Correct  %d/%d (%.0f%%)\n", a.CorrectCount, a.TotalCount, a.ScorePct())
	fmt.Fprintf(&b, "XP       %d\n", a.XP)

	if len(a.Results) == 0 {
		return b.String()
	}
	rows := make([][]string, 0, len(a.Results))
	for _, r := range a.Results {
		rows = append(rows, []string{
			r.SkillID,
			fmt.Sprintf("%s/%s", FormatPriority(r.PointsEarned), FormatPriority(r.MaxPoints)),
			fmt.Sprintf("%.1f", skillgap.AttemptScore(r.PointsEarned, r.MaxPoints)),
		})
	}
	b.WriteString("\n")
	b.WriteString(Table{
		Headers: []string{"SKILL", "POINTS", "SCORE"},
		Rows:    rows,
		Right:   map[int]bool{1: true, 2: true},
	}.Render())
	return b.String()
}
