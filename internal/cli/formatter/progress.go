package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45% for a percentage in
// [0,100]. Green from 66, yellow from 33, red below.
func RenderProgress(pct float64, width int) string {
	return fmt.Sprintf("[%s] %3.0f%%", progressBar(pct, width), clampPct(pct))
}

// RenderCompactBar renders only the blocks, for table cells.
func RenderCompactBar(pct float64, width int) string {
	return progressBar(pct, width)
}

func progressBar(pct float64, width int) string {
	pct = clampPct(pct)
	width = max(width, 2)

	filled := min(width, int(pct/100*float64(width)))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct < 33:
		style = StyleRed
	case pct < 66:
		style = StyleYellow
	}
	return style.Render(bar)
}

func clampPct(pct float64) float64 {
	return max(0, min(100, pct))
}
