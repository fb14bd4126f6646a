// Package quiz asks the learner to type the Swedish for each English word.
package quiz

import (
	"fmt"
	"math/rand/v2"
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

// QuizScreen is the typed-answer word quiz.
type QuizScreen struct {
	game     *practice.Quiz
	input    components.TextInput
	retry    bool
	now      func() time.Time
	started  time.Time
	finished bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over a shuffled copy of words.
func New(words []content.Word, rng *rand.Rand, now func() time.Time) (*QuizScreen, error) {
	game, err := practice.NewQuiz(words, rng)
	if err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	return &QuizScreen{
		game:    game,
		input:   components.NewTextInput("Skriv på svenska...", 40),
		now:     now,
		started: now(),
	}, nil
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *QuizScreen) Title() string {
	return "Word Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.game.Status() == practice.StatusPlaying {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check"},
			{Key: "Ctrl+F", Description: "Finish"},
			{Key: "Esc", Description: "Leave"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Next"},
		{Key: "Ctrl+F", Description: "Finish"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.finished {
		return s, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "ctrl+f":
			return s, s.finish()
		case "enter":
			return s, s.submit()
		}
		if s.game.Status() != practice.StatusPlaying {
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *QuizScreen) submit() tea.Cmd {
	switch s.game.Status() {
	case practice.StatusPlaying:
		st := s.game.Submit(s.input.Value())
		switch st {
		case practice.StatusIncorrect:
			s.game.Retry()
			s.input.Clear()
			s.retry = true
		case practice.StatusCorrect:
			s.input.Submit(true)
		case practice.StatusRevealed:
			s.input.Submit(false)
		}
		return nil

	case practice.StatusCorrect, practice.StatusRevealed:
		if !s.game.Next() {
			return s.finish()
		}
		s.input.Clear()
		s.retry = false
	}
	return nil
}

func (s *QuizScreen) finish() tea.Cmd {
	s.finished = true
	return screen.Cmd(screen.ModeDoneMsg{
		Result:   s.game.Result(),
		Duration: s.now().Sub(s.started),
	})
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	w := s.game.Current()
	idx, total := s.game.Position()

	counter := theme.Subtitle.Render(fmt.Sprintf("Word %d of %d", idx+1, total))
	prompt := components.Card(
		theme.Hint.Render("How do you say")+"\n"+
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(w.English)+
			"\n"+theme.Hint.Render("in Swedish?"), cw)

	sections := []string{
		components.Centered(counter, cw),
		prompt,
		components.Centered(s.input.View(), cw),
	}

	var verdict string
	switch s.game.Status() {
	case practice.StatusCorrect:
		verdict = theme.Correct.Render("Rätt! " + w.Swedish)
	case practice.StatusRevealed:
		verdict = theme.Incorrect.Render("The answer was " + w.Swedish)
	default:
		if s.retry {
			verdict = theme.Warning.Render(fmt.Sprintf("Not quite. %d try left", s.game.AttemptsLeft()))
		}
	}
	if verdict != "" {
		sections = append(sections, components.Centered(verdict, cw))
	}
	if st := s.game.Status(); st == practice.StatusCorrect || st == practice.StatusRevealed {
		sections = append(sections, components.Centered(theme.Hint.Render("Press Enter for the next word"), cw))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
