package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/svenska/internal/ui/theme"
)

var choiceLabels = []string{"A", "B", "C", "D", "E"}

// MultiChoice is a multiple-choice selector component. Options can be
// picked with the arrows and Enter, or directly with 1-5 or a-e.
type MultiChoice struct {
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewMultiChoice creates a new multiple-choice component. correct is the
// text of the right option.
func NewMultiChoice(options []string, correct string) MultiChoice {
	idx := -1
	for i, o := range options {
		if o == correct {
			idx = i
			break
		}
	}
	return MultiChoice{
		Options:      options,
		CorrectIndex: idx,
		ChosenIndex:  -1,
	}
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) MultiChoice {
	if m.Submitted {
		return m
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m
	case "enter":
		m.choose(m.Selected)
		return m
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) {
		m.choose(n - 1)
		return m
	}
	for i := range m.Options {
		if i < len(choiceLabels) && strings.EqualFold(key, choiceLabels[i]) {
			m.choose(i)
			break
		}
	}
	return m
}

func (m *MultiChoice) choose(i int) {
	m.Selected = i
	m.ChosenIndex = i
	m.Submitted = true
}

// Chosen returns the text of the submitted option.
func (m MultiChoice) Chosen() string {
	if !m.Submitted || m.ChosenIndex < 0 {
		return ""
	}
	return m.Options[m.ChosenIndex]
}

// View renders the options, coloring the answer once submitted.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		label := strconv.Itoa(i + 1)
		if i < len(choiceLabels) {
			label = choiceLabels[i]
		}
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		var style lipgloss.Style
		switch {
		case m.Submitted && i == m.CorrectIndex:
			style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		case m.Submitted && i == m.ChosenIndex:
			style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		case m.Submitted:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// IsCorrect returns true if the user chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
