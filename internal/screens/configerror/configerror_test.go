package configerror

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestViewShowsPath(t *testing.T) {
	s := New("/home/anna/.config/svenska/config.yaml")
	view := s.View(100, 30)
	for _, want := range []string{"GEMINI_API_KEY", "config.yaml"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: 'q', Text: "q"},
	} {
		s := New("")
		_, cmd := s.Update(msg)
		if cmd == nil {
			t.Fatalf("%s should quit", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected QuitMsg, got %T", msg.String(), cmd())
		}
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	s := New("")
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("unexpected command")
	}
}
