// Package grammar runs the multiple-choice grammar round.
package grammar

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/svenska/internal/content"
	"github.com/abhisek/svenska/internal/practice"
	"github.com/abhisek/svenska/internal/screen"
	"github.com/abhisek/svenska/internal/ui/components"
	"github.com/abhisek/svenska/internal/ui/layout"
	"github.com/abhisek/svenska/internal/ui/theme"
)

// QuestionSource supplies grammar questions.
type QuestionSource interface {
	GrammarQuestions(ctx context.Context, n int) ([]content.GrammarQuestion, error)
}

// questionsLoadedMsg is sent when the question request returns.
type questionsLoadedMsg struct {
	Questions []content.GrammarQuestion
	Err       error
}

// GrammarScreen asks one question at a time and explains each answer.
type GrammarScreen struct {
	src      QuestionSource
	count    int
	now      func() time.Time
	started  time.Time
	game     *practice.Grammar
	choice   components.MultiChoice
	errMsg   string
	finished bool
}

var _ screen.Screen = (*GrammarScreen)(nil)
var _ screen.KeyHintProvider = (*GrammarScreen)(nil)

// New creates a GrammarScreen that loads count questions from src.
func New(src QuestionSource, count int, now func() time.Time) *GrammarScreen {
	if now == nil {
		now = time.Now
	}
	return &GrammarScreen{src: src, count: count, now: now, started: now()}
}

func (s *GrammarScreen) Init() tea.Cmd {
	src, n := s.src, s.count
	return func() tea.Msg {
		qs, err := src.GrammarQuestions(context.Background(), n)
		return questionsLoadedMsg{Questions: qs, Err: err}
	}
}

func (s *GrammarScreen) Title() string {
	return "Grammar Detective"
}

func (s *GrammarScreen) KeyHints() []layout.KeyHint {
	if s.game != nil && s.game.Answered() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "F", Description: "Finish"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-3", Description: "Answer"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Leave"},
	}
}

func (s *GrammarScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		game, err := practice.NewGrammar(msg.Questions)
		if err != nil {
			s.errMsg = "no questions available"
			return s, nil
		}
		s.game = game
		s.resetChoice()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *GrammarScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	if s.errMsg != "" {
		if key == "enter" {
			return s, screen.Cmd(screen.ExitMsg{})
		}
		return s, nil
	}
	if s.game == nil || s.finished {
		return s, nil
	}

	if s.game.Answered() {
		switch key {
		case "enter", "space", "right":
			if !s.game.Next() {
				return s, s.finish()
			}
			s.resetChoice()
		case "f":
			return s, s.finish()
		}
		return s, nil
	}

	s.choice = s.choice.Update(msg)
	if s.choice.Submitted {
		s.game.Answer(s.choice.Chosen())
	}
	return s, nil
}

func (s *GrammarScreen) resetChoice() {
	q := s.game.Current()
	s.choice = components.NewMultiChoice(q.Options, q.CorrectAnswer)
}

func (s *GrammarScreen) finish() tea.Cmd {
	s.finished = true
	return screen.Cmd(screen.ModeDoneMsg{
		Result:   s.game.Result(),
		Duration: s.now().Sub(s.started),
	})
}

func (s *GrammarScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Could not load questions: %s\n\n  Press Enter to go back.", s.errMsg))
	}
	if s.game == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Preparing questions...")
	}

	cw := components.ContentWidth(width)
	q := s.game.Current()
	idx, total := s.game.Position()

	counter := theme.Subtitle.Render(fmt.Sprintf("Question %d of %d · %d correct", idx+1, total, s.game.Correct()))
	sentence := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(q.SwedishSentence) +
		"\n" + theme.Hint.Render(q.EnglishSentence)

	sections := []string{
		components.Centered(counter, cw),
		components.Card(sentence, cw),
		lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Bold(true).Render(q.Question),
		s.choice.View(),
	}

	if s.game.Answered() {
		var verdict string
		if s.choice.IsCorrect() {
			verdict = theme.Correct.Render("Rätt!")
		} else {
			verdict = theme.Incorrect.Render("Fel! The answer is " + q.CorrectAnswer)
		}
		sections = append(sections, verdict)
		if q.Explanation != "" {
			sections = append(sections, lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render(q.Explanation))
		}
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
