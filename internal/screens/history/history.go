package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/svenska/internal/progress"
	"github.com/abhisek/svenska/internal/screen"
	"github.com/abhisek/svenska/internal/ui/layout"
	"github.com/abhisek/svenska/internal/ui/theme"
)

// HistoryScreen lists finalized days, newest first.
type HistoryScreen struct {
	results  []progress.DailyResult
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(results []progress.DailyResult) *HistoryScreen {
	return &HistoryScreen{
		results:  results,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No finished days yet. Complete all five activities to fill this in!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, r := range s.results {
		missed := ""
		if n := len(r.MissedItems); n > 0 {
			missed = fmt.Sprintf("  %d to review", n)
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %4d points%s", prefix, r.Date, r.TotalPoints, missed)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Secondary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderDetails(r, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderDetails(r progress.DailyResult, width int) string {
	var b strings.Builder
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(progress.AllModes))
	for _, m := range progress.AllModes {
		parts = append(parts, fmt.Sprintf("%s %d", m.DisplayName(), r.Points[m]))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    "+strings.Join(parts, " · "))))
	b.WriteString("\n")

	if len(r.MissedItems) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			dim.Italic(true).Render("    Nothing missed")))
		b.WriteString("\n")
		return b.String()
	}
	for _, mi := range r.MissedItems {
		line := fmt.Sprintf("    %s: %s  you said %q, answer %q",
			mi.Mode.DisplayName(), mi.Question, mi.UserAnswer, mi.CorrectAnswer)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}
