package summary

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

// trendDays is how many days of history the bar chart shows.
const trendDays = 7

// Data is everything the summary displays.
type Data struct {
	Result  progress.DailyResult
	History []progress.DailyResult
	Streak  int
	Level   progress.LevelInfo
}

// SummaryScreen displays the day's finalized result.
type SummaryScreen struct {
	data Data
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(data Data) *SummaryScreen {
	return &SummaryScreen{data: data}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Daily Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, screen.Cmd(screen.ExitMsg{})
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.data.Result
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render("Bra jobbat! Day complete"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Total: %d points        Streak: %d        Level %d · %s",
			r.TotalPoints, s.data.Streak, s.data.Level.Level, s.data.Level.Name)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	section := func(title string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(title)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")
	}

	section("Activities")
	for _, m := range progress.AllModes {
		line := fmt.Sprintf("%-20s %4d", m.DisplayName(), r.Points[m])
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	if len(r.MissedItems) > 0 {
		b.WriteString("\n")
		section(fmt.Sprintf("To review (%d)", len(r.MissedItems)))
		for _, mi := range r.MissedItems {
			line := fmt.Sprintf("%s: %s  →  %s", mi.Mode.DisplayName(), mi.Question, mi.CorrectAnswer)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
			b.WriteString("\n")
		}
	}

	if bars := progress.Trend(s.data.History, trendDays); len(bars) > 1 {
		b.WriteString("\n")
		section("Last days")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, RenderTrend(bars, 20)))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderTrend draws one horizontal bar per day, oldest first.
func RenderTrend(bars []progress.TrendBar, barWidth int) string {
	lines := make([]string, 0, len(bars))
	for _, tb := range bars {
		filled := int(float64(barWidth) * tb.Percent / 100)
		filled = max(0, min(filled, barWidth))
		bar := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled)) +
			lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled))
		lines = append(lines, fmt.Sprintf("%s  %s %4d", tb.Date, bar, tb.Points))
	}
	return strings.Join(lines, "\n")
}
