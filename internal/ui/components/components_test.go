package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func TestMenuSkipsDisabledAndWraps(t *testing.T) {
	ran := ""
	item := func(label string, disabled bool) MenuItem {
		return MenuItem{Label: label, Disabled: disabled, Action: func() tea.Cmd {
			ran = label
			return nil
		}}
	}
	m := NewMenu([]MenuItem{item("a", true), item("b", false), item("c", true), item("d", false)})
	if m.Selected != 1 {
		t.Fatalf("cursor = %d, want first enabled item", m.Selected)
	}

	down := tea.KeyPressMsg{Code: tea.KeyDown}
	up := tea.KeyPressMsg{Code: tea.KeyUp}
	steps := []struct {
		msg  tea.Msg
		want int
	}{
		{down, 3},
		{down, 1},
		{up, 3},
		{up, 1},
	}
	for i, s := range steps {
		m, _ = m.Update(s.msg)
		if m.Selected != s.want {
			t.Fatalf("step %d: cursor = %d, want %d", i, m.Selected, s.want)
		}
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if ran != "b" {
		t.Errorf("enter ran %q, want b", ran)
	}
}

func TestMenuAllDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "x", Disabled: true}})
	m, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 0 || cmd != nil {
		t.Errorf("cursor = %d, cmd = %v", m.Selected, cmd)
	}
	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("disabled item must not run")
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		fraction float64
		full     int
	}{
		{0, 0},
		{0.5, 5},
		{1, 10},
		{-1, 0},
		{3, 10},
	}
	for _, tt := range tests {
		got := Bar(tt.fraction, 10, false)
		if w := lipgloss.Width(got); w != 10 {
			t.Errorf("Bar(%v) width = %d, want 10", tt.fraction, w)
		}
		if n := strings.Count(got, "█"); n != tt.full {
			t.Errorf("Bar(%v) filled = %d, want %d", tt.fraction, n, tt.full)
		}
	}

	if got := Bar(0.42, 30, true); !strings.Contains(got, "42%") || lipgloss.Width(got) != 30 {
		t.Errorf("Bar with percent = %q (width %d)", got, lipgloss.Width(got))
	}
}

func TestContentWidth(t *testing.T) {
	for frame, want := range map[int]int{10: 20, 60: 54, 200: 64} {
		if got := ContentWidth(frame); got != want {
			t.Errorf("ContentWidth(%d) = %d, want %d", frame, got, want)
		}
	}
}
