// Package scramble asks the learner to rebuild shuffled Swedish sentences.
package scramble

import (
	"context"
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

// SentenceSource supplies scramble sentences.
type SentenceSource interface {
	ScrambleSentences(ctx context.Context, n int) ([]content.Sentence, error)
}

// sentencesLoadedMsg is sent when the sentence request returns.
type sentencesLoadedMsg struct {
	Sentences []content.Sentence
	Err       error
}

// ScrambleScreen shows a word bank and the answer line being built.
type ScrambleScreen struct {
	src      SentenceSource
	count    int
	rng      *rand.Rand
	now      func() time.Time
	started  time.Time
	game     *practice.Scramble
	errMsg   string
	finished bool
}

var _ screen.Screen = (*ScrambleScreen)(nil)
var _ screen.KeyHintProvider = (*ScrambleScreen)(nil)

// New creates a ScrambleScreen that loads count sentences from src.
func New(src SentenceSource, count int, rng *rand.Rand, now func() time.Time) *ScrambleScreen {
	if now == nil {
		now = time.Now
	}
	return &ScrambleScreen{src: src, count: count, rng: rng, now: now, started: now()}
}

func (s *ScrambleScreen) Init() tea.Cmd {
	src, n := s.src, s.count
	return func() tea.Msg {
		sentences, err := src.ScrambleSentences(context.Background(), n)
		return sentencesLoadedMsg{Sentences: sentences, Err: err}
	}
}

func (s *ScrambleScreen) Title() string {
	return "Sentence Scramble"
}

func (s *ScrambleScreen) KeyHints() []layout.KeyHint {
	if s.game == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Leave"}}
	}
	switch s.game.Status() {
	case practice.StatusCorrect:
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}}
	case practice.StatusIncorrect:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Try again"},
			{Key: "Tab", Description: "Skip"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-7", Description: "Place word"},
		{Key: "⌫", Description: "Remove"},
		{Key: "Enter", Description: "Check"},
		{Key: "Tab", Description: "Skip"},
		{Key: "F", Description: "Finish"},
	}
}

func (s *ScrambleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sentencesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		game, err := practice.NewScramble(msg.Sentences, s.rng)
		if err != nil {
			s.errMsg = "no sentences available"
			return s, nil
		}
		s.game = game
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ScrambleScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
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

	switch key {
	case "f":
		return s, s.finish()
	case "tab":
		return s, s.advance()
	case "backspace":
		if s.game.Status() == practice.StatusPlaying {
			s.game.Remove(len(s.game.Answer()) - 1)
		}
		return s, nil
	case "enter":
		switch s.game.Status() {
		case practice.StatusPlaying:
			s.game.Check()
		case practice.StatusIncorrect:
			s.game.Retry()
		case practice.StatusCorrect:
			return s, s.advance()
		}
		return s, nil
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' && s.game.Status() == practice.StatusPlaying {
		s.game.Place(int(key[0] - '1'))
	}
	return s, nil
}

func (s *ScrambleScreen) advance() tea.Cmd {
	if !s.game.Next() {
		return s.finish()
	}
	return nil
}

func (s *ScrambleScreen) finish() tea.Cmd {
	s.finished = true
	return screen.Cmd(screen.ModeDoneMsg{
		Result:   s.game.Result(),
		Duration: s.now().Sub(s.started),
	})
}

func (s *ScrambleScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Could not load sentences: %s\n\n  Press Enter to go back.", s.errMsg))
	}
	if s.game == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Preparing sentences...")
	}

	cw := components.ContentWidth(width)
	idx, total := s.game.Position()
	cur := s.game.Current()

	counter := theme.Subtitle.Render(fmt.Sprintf("Sentence %d of %d", idx+1, total))
	prompt := components.Card(
		theme.Hint.Render("Translate:")+"\n"+theme.Body.Bold(true).Render(cur.English), cw)

	sections := []string{
		components.Centered(counter, cw),
		prompt,
		components.Centered(s.renderAnswer(), cw),
		components.Centered(s.renderBank(), cw),
	}
	if v := s.renderVerdict(cur); v != "" {
		sections = append(sections, components.Centered(v, cw))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *ScrambleScreen) renderAnswer() string {
	answer := s.game.Answer()
	if len(answer) == 0 {
		return theme.Hint.Render("pick words with 1-7")
	}
	words := make([]string, len(answer))
	for i, t := range answer {
		words[i] = theme.TilePlaced.Render(t.Word)
	}
	return strings.Join(words, " ")
}

func (s *ScrambleScreen) renderBank() string {
	bank := s.game.Bank()
	tiles := make([]string, len(bank))
	for i, t := range bank {
		tiles[i] = theme.Tile.Render(fmt.Sprintf("%d %s", i+1, t.Word))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func (s *ScrambleScreen) renderVerdict(cur content.Sentence) string {
	switch s.game.Status() {
	case practice.StatusCorrect:
		return theme.Correct.Render("Rätt! " + cur.Swedish)
	case practice.StatusIncorrect:
		if s.game.Attempts() >= 2 {
			return theme.Incorrect.Render("Not quite. Answer: " + cur.Swedish)
		}
		return theme.Incorrect.Render("Not quite, try again")
	}
	return ""
}
