package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpath/internal/app"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/skillgap"
)

// FormatCatalogImport summarises a catalog import.
func FormatCatalogImport(r *app.CatalogImportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s, %s, %s, %s\n",
		StyleGreen.Render("Imported"),
		Pluralize(r.SkillCount, "skill"),
		Pluralize(r.RoleCount, "role"),
		Pluralize(r.WeightCount, "role weight"),
		Pluralize(r.DependencyCount, "dependency edge"))
	if len(r.CycleMembers) > 0 {
		b.WriteString(StyleYellow.Render("! dependency cycle between: " + strings.Join(r.CycleMembers, ", ")))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatRoles lists catalog roles.
func FormatRoles(roles []domain.Role) string {
	if len(roles) == 0 {
		return Dim("No roles. Import a catalog first.") + "\n"
	}
	rows := make([][]string, 0, len(roles))
	for _, r := range roles {
		rows = append(rows, []string{r.ID, r.Name})
	}
	return RenderTable([]string{"ID", "NAME"}, rows)
}

// FormatSkills lists catalog skills with the skills each one unlocks.
func FormatSkills(c *domain.Catalog) string {
	if len(c.Skills) == 0 {
		return Dim("No skills. Import a catalog first.") + "\n"
	}
	g := skillgap.NewGraph(c.Dependencies)
	rows := make([][]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		unlocks := Dim("-")
		if deps := g.Dependents(s.ID); len(deps) > 0 {
			unlocks = strings.Join(deps, ", ")
		}
		rows = append(rows, []string{s.ID, s.Name, s.Category, unlocks})
	}
	return RenderTable([]string{"ID", "NAME", "CATEGORY", "UNLOCKS"}, rows)
}
