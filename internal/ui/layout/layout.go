// Package layout draws the chrome around every screen: a header with the
// learner's streak, XP and level, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/svenska/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

type KeyHint struct {
	Key         string
	Description string
}

// HeaderStats is shown on the right of the header. Level is preformatted,
// e.g. "Lv 3".
type HeaderStats struct {
	Streak int
	XP     int
	Level  string
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize request.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Body.Align(lipgloss.Center).Render(fmt.Sprintf(
			"Terminal too small\n\nNeed at least %d×%d, have %d×%d",
			MinWidth, MinHeight, width, height)))
}

// RenderHeader puts the app name on the left, the screen title in the
// middle and stats on the right.
func RenderHeader(title string, stats HeaderStats, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(" Svenska")

	parts := []string{
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("🔥 %d", stats.Streak)),
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("★ %d XP", stats.XP)),
	}
	if stats.Level != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(stats.Level))
	}
	right := strings.Join(parts, "   ") + " "

	inner := max(width-2, 0)
	line := lipgloss.PlaceHorizontal(inner, lipgloss.Center, theme.Body.Render(title))
	// Overlay brand and stats on the centered title when they fit.
	if side := lipgloss.Width(brand) + lipgloss.Width(right); side < inner {
		mid := lipgloss.PlaceHorizontal(inner-side, lipgloss.Center, theme.Body.Render(title))
		line = brand + mid + right
	}
	return bar.Width(width).Render(line)
}

func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = theme.Body.Bold(true).Render(h.Key) + " " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
	}
	return bar.Width(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, body and footer, sizing the body to whatever
// height is left.
func RenderFrame(header, body, footer string, width, height int) string {
	h := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(h).Render(body),
		footer,
	)
}
