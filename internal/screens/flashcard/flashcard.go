// Package flashcard pages through the day's words.
package flashcard

import (
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

// FlashcardScreen shows one card at a time, Swedish side first.
type FlashcardScreen struct {
	deck     *practice.Flashcards
	now      func() time.Time
	started  time.Time
	finished bool
}

var _ screen.Screen = (*FlashcardScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardScreen)(nil)

// New creates a FlashcardScreen over words.
func New(words []content.Word, now func() time.Time) (*FlashcardScreen, error) {
	deck, err := practice.NewFlashcards(words)
	if err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	return &FlashcardScreen{deck: deck, now: now, started: now()}, nil
}

func (s *FlashcardScreen) Init() tea.Cmd {
	return nil
}

func (s *FlashcardScreen) Title() string {
	return "Flashcards"
}

func (s *FlashcardScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←→", Description: "Prev/Next"},
	}
	if s.deck.AtEnd() {
		hints = append(hints, layout.KeyHint{Key: "F", Description: "Finish"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Leave"})
}

func (s *FlashcardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.finished {
		return s, nil
	}

	switch kmsg.String() {
	case "space", " ", "enter", "up", "down":
		s.deck.Flip()
	case "right", "l", "n":
		if !s.deck.Next() {
			return s, s.finish()
		}
	case "left", "h", "p":
		s.deck.Prev()
	case "f":
		// The deck reward is only earned on the last card.
		if s.deck.AtEnd() {
			return s, s.finish()
		}
	}
	return s, nil
}

func (s *FlashcardScreen) finish() tea.Cmd {
	s.finished = true
	return screen.Cmd(screen.ModeDoneMsg{
		Result:   s.deck.Result(),
		Duration: s.now().Sub(s.started),
	})
}

func (s *FlashcardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	w := s.deck.Current()
	idx, total := s.deck.Position()

	var face strings.Builder
	if s.deck.Flipped() {
		face.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(w.English))
		face.WriteString("\n\n")
		face.WriteString(theme.Body.Render(w.EnglishSentence))
		face.WriteString("\n")
		face.WriteString(theme.Hint.Render(w.SwedishSentence))
	} else {
		face.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(w.Swedish))
		face.WriteString("\n\n")
		face.WriteString(theme.Hint.Render("space to reveal"))
	}

	counter := theme.Subtitle.Render(fmt.Sprintf("Card %d of %d", idx+1, total))
	bar := components.Bar(float64(idx+1)/float64(total), cw, false)

	hint := "→ next card"
	if s.deck.AtEnd() {
		hint = "→ finish (+" + fmt.Sprint(practice.FlashcardXP) + " XP)"
	}

	content := strings.Join([]string{
		components.Centered(counter, cw),
		bar,
		components.Card(face.String(), cw),
		components.Centered(theme.Hint.Render(hint), cw),
	}, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
