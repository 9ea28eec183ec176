package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/skillpath/internal/app"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	SetColorEnabled(false)
	m.Run()
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name   string
		pct    float64
		filled int
		label  string
	}{
		{"empty", 0, 0, "  0%"},
		{"half", 50, 5, " 50%"},
		{"full", 100, 10, "100%"},
		{"over clamps", 150, 10, "100%"},
		{"negative clamps", -20, 0, "  0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, 10)
			assert.Equal(t, tt.filled, strings.Count(got, filledBlock))
			assert.Equal(t, 10-tt.filled, strings.Count(got, emptyBlock))
			assert.True(t, strings.HasSuffix(got, tt.label), got)
		})
	}
}

func TestRenderCompactBar_MinimumWidth(t *testing.T) {
	got := RenderCompactBar(50, 1)
	assert.Equal(t, 2, lipgloss.Width(got))
	assert.NotContains(t, got, "%")
}

func TestTable_AlignsColumns(t *testing.T) {
	out := Table{
		Headers: []string{"SKILL", "N"},
		Rows:    [][]string{{"go", "7"}, {"kubernetes", "12"}},
		Right:   map[int]bool{1: true},
	}.Render()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "SKILL        N", lines[0])
	assert.Equal(t, "go           7", lines[2])
	assert.Equal(t, "kubernetes  12", lines[3])
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestFormatPriority(t *testing.T) {
	assert.Equal(t, "3.2", FormatPriority(3.2))
	assert.Equal(t, "0", FormatPriority(0))
	assert.Equal(t, "1.875", FormatPriority(1.875))
	assert.Equal(t, "50", FormatPriority(50))
}

func TestFormatRoadmap(t *testing.T) {
	v := &app.RoadmapView{
		RoleID: "be",
		Entries: []*domain.RoadmapEntry{
			{SkillID: "http", Category: domain.CategoryMissing, Priority: 3.2, Status: domain.RoadmapTodo},
			{SkillID: "sql", Category: domain.CategoryStrong, Priority: 0, Status: domain.RoadmapDone, Progress: 100},
		},
		AverageProgress: 50,
		Warnings:        []string{"dependency cycle between skills [a b]"},
	}

	out := FormatRoadmap(v)
	assert.Contains(t, out, "ROADMAP · BE")
	assert.Contains(t, out, "● Missing")
	assert.Contains(t, out, "3.2")
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "1/2 done")
	assert.Contains(t, out, " 50%")
	assert.Contains(t, out, "! dependency cycle")
	assert.Less(t, strings.Index(out, "http"), strings.Index(out, "sql"), "entries keep the given order")
}

func TestFormatRoadmap_Empty(t *testing.T) {
	out := FormatRoadmap(&app.RoadmapView{RoleID: "be"})
	assert.Contains(t, out, "roadmap generate")
}

func TestFormatIngest(t *testing.T) {
	prev := 60
	out := FormatIngest(&app.IngestResult{
		Kind:     domain.ContextPractice,
		XP:       150,
		Scores:   []app.SkillScoreChange{{SkillID: "go", Previous: &prev, AttemptScore: 90, Proficiency: 69, Category: domain.CategoryModerate}},
		Skipped:  []string{"cobol"},
		Unlocked: []string{"http"},
	})

	assert.Contains(t, out, "+150 points")
	assert.Contains(t, out, "90.0")
	assert.Contains(t, out, "69")
	assert.Contains(t, out, "Unlocked: http")
	assert.Contains(t, out, "skipped unknown 1 skill: cobol")
}

func TestFormatDifficulty(t *testing.T) {
	out := FormatDifficulty(&app.DifficultyDecision{Kind: domain.ContextDaily, Level: 4, Label: "Hard", BasePointsPerCorrect: 100, HistorySize: 3})
	assert.Contains(t, out, "NEXT DAILY TEST")
	assert.Contains(t, out, "4 Hard")
	assert.Contains(t, out, "100 per correct answer")
	assert.Contains(t, out, "3 recent attempts")
}

func TestFormatCatalogImport(t *testing.T) {
	out := FormatCatalogImport(&app.CatalogImportResult{SkillCount: 3, RoleCount: 1, WeightCount: 2, DependencyCount: 1, CycleMembers: []string{"a", "b"}})
	assert.Contains(t, out, "3 skills, 1 role, 2 role weights, 1 dependency edge")
	assert.Contains(t, out, "cycle between: a, b")
}

func TestFormatSkills_ShowsUnlocks(t *testing.T) {
	out := FormatSkills(&domain.Catalog{
		Skills: []domain.Skill{{ID: "go", Name: "Go"}, {ID: "http", Name: "HTTP"}},
		Dependencies: []domain.SkillDependency{
			{PrerequisiteSkillID: "go", DependentSkillID: "http"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[2], "go"), lines[2])
	assert.True(t, strings.HasSuffix(lines[2], "http"), lines[2])
	assert.True(t, strings.HasSuffix(lines[3], "-"), lines[3])

	assert.Contains(t, FormatSkills(&domain.Catalog{}), "No skills")
}

func TestFormatAttempt_Breakdown(t *testing.T) {
	out := FormatAttempt(&domain.Attempt{
		ID:              "a1",
		Kind:            domain.ContextPractice,
		DifficultyLevel: 3,
		CorrectCount:    3,
		TotalCount:      4,
		XP:              225,
		Results:         []domain.SkillResult{{SkillID: "go", PointsEarned: 150, MaxPoints: 200}},
	})
	assert.Contains(t, out, "PRACTICE ATTEMPT A1")
	assert.Contains(t, out, "3 Intermediate")
	assert.Contains(t, out, "3/4 (75%)")
	assert.Contains(t, out, "150/200")
	assert.Contains(t, out, "75.0")
}
