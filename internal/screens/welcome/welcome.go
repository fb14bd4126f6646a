// Package welcome is the home screen: today's stats, the weekly strip and
// the practice menu.
package welcome

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/svenska/internal/content"
	"github.com/abhisek/svenska/internal/progress"
	"github.com/abhisek/svenska/internal/screen"
	"github.com/abhisek/svenska/internal/session"
	"github.com/abhisek/svenska/internal/ui/components"
	"github.com/abhisek/svenska/internal/ui/layout"
	"github.com/abhisek/svenska/internal/ui/theme"
)

// WelcomeScreen shows the learner's standing and the practice menu.
type WelcomeScreen struct {
	state   session.State
	daily   content.Daily
	loading bool
	notice  string
	update  string
	menu    components.Menu
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen in the loading state.
func New(st session.State) *WelcomeScreen {
	w := &WelcomeScreen{state: st, loading: true}
	w.rebuildMenu()
	return w
}

// SetState refreshes the stats and completion marks.
func (w *WelcomeScreen) SetState(st session.State) {
	w.state = st
	w.rebuildMenu()
}

// SetDaily installs the day's content and enables the practice entries.
func (w *WelcomeScreen) SetDaily(d content.Daily) {
	w.daily = d
	w.loading = false
	w.rebuildMenu()
	w.menu.Selected = 0
}

// SetLoading disables the practice entries while content is fetched.
func (w *WelcomeScreen) SetLoading() {
	w.loading = true
	w.rebuildMenu()
}

// Daily returns the installed content.
func (w *WelcomeScreen) Daily() content.Daily { return w.daily }

// SetNotice shows a one-line message above the menu until replaced.
func (w *WelcomeScreen) SetNotice(s string) { w.notice = s }

// Notice returns the current notice.
func (w *WelcomeScreen) Notice() string { return w.notice }

// Loading reports whether content is still being fetched.
func (w *WelcomeScreen) Loading() bool { return w.loading }

// SetUpdate shows a note that version v is available.
func (w *WelcomeScreen) SetUpdate(v string) { w.update = v }

func (w *WelcomeScreen) rebuildMenu() {
	selected := w.menu.Selected

	items := make([]components.MenuItem, 0, len(progress.AllModes)+3)
	for _, m := range progress.AllModes {
		mode := m
		label := mode.DisplayName()
		if w.state.Progress.HasCompleted(mode) {
			label += "  ✓"
		}
		items = append(items, components.MenuItem{
			Label:    label,
			Disabled: w.loading,
			Action: func() tea.Cmd {
				return screen.Cmd(screen.StartModeMsg{Mode: mode})
			},
		})
	}
	items = append(items,
		components.MenuItem{Label: "New words", Disabled: w.loading, Action: func() tea.Cmd {
			return screen.Cmd(screen.NewWordsMsg{})
		}},
		components.MenuItem{Label: "History", Action: func() tea.Cmd {
			return screen.Cmd(screen.HistoryMsg{})
		}},
		components.MenuItem{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	w.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) && !items[selected].Disabled {
		w.menu.Selected = selected
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) Title() string {
	return "Home"
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "1-5", Description: "Practice"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && !w.loading {
		switch k := kmsg.String(); k {
		case "1", "2", "3", "4", "5":
			mode := progress.AllModes[int(k[0]-'1')]
			return w, screen.Cmd(screen.StartModeMsg{Mode: mode})
		}
	}

	var cmd tea.Cmd
	w.menu, cmd = w.menu.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) View(width, height int) string {
	termHeight := height + 8
	compact := termHeight < 36 || width < 100
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, RenderBanner(cw, compact))
	sections = append(sections, w.renderStats(cw))
	sections = append(sections, renderWeek(w.state.Week, cw))

	if info := w.renderDaily(cw, compact); info != "" {
		sections = append(sections, info)
	}
	if w.notice != "" {
		sections = append(sections, components.Centered(theme.Warning.Render(w.notice), cw))
	}

	sections = append(sections, w.renderMenu(cw))

	if w.update != "" {
		sections = append(sections, components.Centered(
			theme.Hint.Render(fmt.Sprintf("New version %s available (svenska update)", w.update)), cw))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (w *WelcomeScreen) renderStats(cw int) string {
	lvl := w.state.Level
	streak := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("🔥 %d day streak", w.state.Stats.Streak))
	xp := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("★ %d XP", w.state.Stats.XP))
	level := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("Level %d · %s", lvl.Level, lvl.Name))

	line := fmt.Sprintf("%s   %s   %s", streak, xp, level)

	var next string
	if lvl.MaxLevel() {
		next = theme.Hint.Render("Top level reached")
	} else {
		next = theme.Hint.Render(fmt.Sprintf("%d XP to next level", lvl.NextLevelXP-w.state.Stats.XP))
	}
	bar := components.Bar(lvl.ProgressPercent/100, cw-8, true)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line + "\n" + bar + "\n" + next)
}

// renderWeek draws the Monday-first attendance strip.
func renderWeek(ws progress.WeekStatus, cw int) string {
	cells := make([]string, 0, 7)
	for i, label := range progress.WeekdayLabels {
		mark := "○"
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if ws.Slots[i] {
			mark = "●"
			style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		}
		if i == ws.TodayIndex {
			style = style.Underline(true)
		}
		cells = append(cells, style.Render(label+" "+mark))
	}
	row := strings.Join(cells, "  ")
	count := theme.Hint.Render(fmt.Sprintf("%d/7 this week", ws.Count))
	return components.Centered(row+"\n"+count, cw)
}

func (w *WelcomeScreen) renderDaily(cw int, compact bool) string {
	if w.loading {
		return components.Centered(theme.Hint.Render("Fetching today's words..."), cw)
	}

	var lines []string
	if w.daily.Theme != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render(fmt.Sprintf("Today's theme: %s · %d words", w.daily.Theme, len(w.daily.Words))))
	}
	if w.daily.FunFact != "" && !compact {
		lines = append(lines, lipgloss.NewStyle().Width(cw-4).Foreground(theme.TextDim).
			Render(w.daily.FunFact))
	}
	if w.daily.Warning != "" {
		lines = append(lines, theme.Warning.Render("⚠ "+w.daily.Warning))
	}
	if len(lines) == 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}

func (w *WelcomeScreen) renderMenu(cw int) string {
	lines := make([]string, 0, len(w.menu.Items))
	for i, item := range w.menu.Items {
		var line string
		switch {
		case item.Disabled:
			line = lipgloss.NewStyle().Foreground(theme.TextDim).Render("   " + item.Label)
		case i == w.menu.Selected:
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Secondary).
				Bold(true).
				Render(" ▸ " + item.Label + " ")
		case strings.HasSuffix(item.Label, "✓"):
			line = theme.Done.Render("   " + item.Label)
		default:
			line = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + item.Label)
		}
		lines = append(lines, line)
	}
	block := lipgloss.NewStyle().Width(24).Render(strings.Join(lines, "\n"))
	return components.Centered(block, cw)
}
