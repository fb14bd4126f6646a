package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/svenska/internal/ui/theme"
)

// Bar renders fraction (clamped to 0..1) as a block bar width cells wide.
// With pct set the bar is shortened to make room for a trailing percentage.
func Bar(fraction float64, width int, pct bool) string {
	fraction = min(max(fraction, 0), 1)

	var suffix string
	if pct {
		suffix = theme.Hint.Render(fmt.Sprintf(" %3d%%", int(fraction*100)))
	}
	cells := max(width-lipgloss.Width(suffix), 4)
	filled := int(float64(cells)*fraction + 0.5)

	full := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", cells-filled))
	return full + rest + suffix
}
