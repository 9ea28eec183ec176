package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/skillpath/internal/app"
	"github.com/alexanderramin/skillpath/internal/domain"
)

const barWidth = 10

// FormatRoadmap renders a roadmap view as a ranked table followed by the
// overall progress line.
func FormatRoadmap(v *app.RoadmapView) string {
	var b strings.Builder
	b.WriteString(Header("Roadmap · " + v.RoleID))
	b.WriteString("\n")

	if len(v.Entries) == 0 {
		b.WriteString(Dim("No skills on the roadmap yet. Run 'skillpath roadmap generate'."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(v.Entries))
	for i, e := range v.Entries {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			e.SkillID,
			CategoryIndicator(e.Category),
			FormatPriority(e.Priority),
			StatusLabel(e.Status),
			fmt.Sprintf("%s %3d%%", RenderCompactBar(float64(e.Progress), barWidth), e.Progress),
		})
	}
	b.WriteString(Table{
		Headers: []string{"#", "SKILL", "GAP", "PRIORITY", "STATUS", "PROGRESS"},
		Rows:    rows,
		Right:   map[int]bool{0: true, 3: true},
	}.Render())

	b.WriteString("\n")
	fmt.Fprintf(&b, "Overall %s  %s done\n",
		RenderProgress(v.AverageProgress, 20),
		Dim(fmt.Sprintf("%d/%d", v.DoneCount(), len(v.Entries))))

	for _, w := range v.Warnings {
		b.WriteString(StyleYellow.Render("! " + w))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatEntry renders a one-line summary of a single roadmap entry.
func FormatEntry(e *domain.RoadmapEntry) string {
	return fmt.Sprintf("%s  %s  %s  %s\n",
		Bold(e.SkillID),
		CategoryIndicator(e.Category),
		StatusLabel(e.Status),
		RenderProgress(float64(e.Progress), barWidth))
}
