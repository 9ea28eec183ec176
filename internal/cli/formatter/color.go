package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorOrange).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SetColorEnabled switches the default renderer between true color output
// and plain ASCII.
func SetColorEnabled(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// CategoryStyle maps a gap category to its color. Bigger gaps are hotter.
func CategoryStyle(c domain.Category) lipgloss.Style {
	switch c {
	case domain.CategoryMissing:
		return StyleRed
	case domain.CategoryWeak:
		return StyleOrange
	case domain.CategoryModerate:
		return StyleYellow
	case domain.CategoryStrong:
		return StyleGreen
	default:
		return StyleDim
	}
}

// CategoryIndicator returns a colored label such as "● Missing".
func CategoryIndicator(c domain.Category) string {
	if c == "" {
		return StyleDim.Render("● Unknown")
	}
	return CategoryStyle(c).Render("● " + string(c))
}

// StatusLabel renders a roadmap status.
func StatusLabel(s domain.RoadmapStatus) string {
	switch s {
	case domain.RoadmapDone:
		return StyleGreen.Render("done")
	case domain.RoadmapInProgress:
		return StyleBlue.Render("in progress")
	default:
		return StyleDim.Render("todo")
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
