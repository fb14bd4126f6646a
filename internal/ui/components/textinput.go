package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/svenska/internal/ui/theme"
)

type verdict int

const (
	unjudged verdict = iota
	judgedRight
	judgedWrong
)

// TextInput is a focused bubbles text input that shows ✓ or ✗ after the
// answer has been judged.
type TextInput struct {
	Model   textinput.Model
	verdict verdict
}

// NewTextInput returns a focused input. A non-positive limit keeps the
// bubbles default.
func NewTextInput(placeholder string, limit int) TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	m.Prompt = "› "
	if limit > 0 {
		m.CharLimit = limit
	}
	m.Focus()
	return TextInput{Model: m}
}

// Init starts the cursor blinking.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	switch t.verdict {
	case judgedRight:
		return t.Model.View() + " " + theme.Correct.Render("✓")
	case judgedWrong:
		return t.Model.View() + " " + theme.Incorrect.Render("✗")
	}
	return t.Model.View()
}

func (t TextInput) Value() string {
	return t.Model.Value()
}

// Submit records whether the current value was right.
func (t *TextInput) Submit(right bool) {
	t.verdict = judgedWrong
	if right {
		t.verdict = judgedRight
	}
}

// Clear empties the input and forgets the verdict.
func (t *TextInput) Clear() {
	t.Model.Reset()
	t.verdict = unjudged
}
