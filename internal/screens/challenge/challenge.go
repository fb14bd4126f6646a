// Package challenge runs the timed multiple-choice round.
package challenge

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

type phase int

const (
	phaseIntro phase = iota
	phasePlaying
	phaseResults
)

// feedbackDelay is how long the verdict stays up before the next question.
const feedbackDelay = 700 * time.Millisecond

// timerTickMsg is sent every second to update the countdown.
type timerTickMsg time.Time

// nextQuestionMsg ends the feedback pause. seq guards against stale ticks.
type nextQuestionMsg struct{ seq int }

// ChallengeScreen is a timed round of Swedish-to-English questions.
type ChallengeScreen struct {
	game     *practice.Challenge
	choice   components.MultiChoice
	phase    phase
	now      func() time.Time
	started  time.Time
	seq      int
	lastPts  int
	finished bool
}

var _ screen.Screen = (*ChallengeScreen)(nil)
var _ screen.KeyHintProvider = (*ChallengeScreen)(nil)

// New creates a ChallengeScreen. It needs at least five words.
func New(words []content.Word, rng *rand.Rand, duration time.Duration, now func() time.Time) (*ChallengeScreen, error) {
	if duration <= 0 {
		duration = practice.DefaultChallengeDuration
	}
	game, err := practice.NewChallenge(words, rng, duration)
	if err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	return &ChallengeScreen{game: game, now: now, started: now()}, nil
}

func (s *ChallengeScreen) Init() tea.Cmd {
	return nil
}

func (s *ChallengeScreen) Title() string {
	return "Challenge"
}

func (s *ChallengeScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseIntro:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Leave"},
		}
	case phaseResults:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-5", Description: "Answer"},
		{Key: "F", Description: "Finish"},
		{Key: "Esc", Description: "Leave"},
	}
}

func (s *ChallengeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()

	case nextQuestionMsg:
		if s.phase != phasePlaying || msg.seq != s.seq {
			return s, nil
		}
		return s, s.nextQuestion()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ChallengeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseIntro:
		if msg.String() == "enter" || msg.String() == "space" {
			now := s.now()
			s.game.Start(now)
			s.phase = phasePlaying
			s.resetChoice()
			return s, tickCmd()
		}

	case phasePlaying:
		if msg.String() == "f" {
			s.phase = phaseResults
			return s, nil
		}
		if s.game.Answered() {
			return s, nil
		}
		s.choice = s.choice.Update(msg)
		if !s.choice.Submitted {
			return s, nil
		}
		now := s.now()
		if s.game.Over(now) {
			s.phase = phaseResults
			return s, nil
		}
		_, s.lastPts = s.game.Answer(s.choice.Chosen(), now)
		seq := s.seq
		return s, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
			return nextQuestionMsg{seq: seq}
		})

	case phaseResults:
		if msg.String() == "enter" && !s.finished {
			s.finished = true
			return s, screen.Cmd(screen.ModeDoneMsg{
				Result:   s.game.Result(),
				Duration: s.now().Sub(s.started),
			})
		}
	}
	return s, nil
}

func (s *ChallengeScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.phase != phasePlaying {
		return s, nil
	}
	if s.game.Over(s.now()) {
		s.phase = phaseResults
		return s, nil
	}
	return s, tickCmd()
}

func (s *ChallengeScreen) nextQuestion() tea.Cmd {
	now := s.now()
	if s.game.Over(now) {
		s.phase = phaseResults
		return nil
	}
	s.game.NextQuestion(now)
	s.resetChoice()
	return nil
}

func (s *ChallengeScreen) resetChoice() {
	q := s.game.Question()
	s.choice = components.NewMultiChoice(q.Options, q.Correct)
	s.seq++
	s.lastPts = 0
}

func (s *ChallengeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var content string
	switch s.phase {
	case phaseIntro:
		content = s.renderIntro(cw)
	case phasePlaying:
		content = s.renderQuestion(cw)
	case phaseResults:
		content = s.renderResults(cw)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *ChallengeScreen) renderIntro(cw int) string {
	lines := []string{
		theme.Title.Render("Beat the clock"),
		"",
		theme.Body.Render("Pick the English meaning of each Swedish word."),
		theme.Body.Render("Faster answers score more: up to 10 points each."),
		"",
		components.Button("Press Enter to start", true, 26),
	}
	return components.Centered(strings.Join(lines, "\n"), cw)
}

func (s *ChallengeScreen) renderQuestion(cw int) string {
	now := s.now()
	remaining := s.game.Remaining(now)
	total := remaining.Seconds() / s.game.Duration().Seconds()

	timer := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("⏱ %02ds", int(remaining.Seconds())))
	score := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("Score %d", s.game.Score()))
	header := components.Centered(timer+"     "+score, cw)
	bar := components.Bar(total, cw, false)

	q := s.game.Question()
	word := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(q.Swedish)

	var verdict string
	if s.game.Answered() {
		if s.lastPts > 0 {
			verdict = theme.Correct.Render(fmt.Sprintf("Rätt! +%d", s.lastPts))
		} else {
			verdict = theme.Incorrect.Render("Fel! " + q.Swedish + " = " + q.Correct)
		}
	}

	return strings.Join([]string{
		header,
		bar,
		components.Card(word, cw),
		components.Centered(s.choice.View(), cw),
		components.Centered(verdict, cw),
	}, "\n\n")
}

func (s *ChallengeScreen) renderResults(cw int) string {
	attempted, correct := s.game.Tally()
	lines := []string{
		theme.Title.Render("Time's up!"),
		"",
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("%d points", s.game.Score())),
		theme.Body.Render(fmt.Sprintf("%d of %d correct", correct, attempted)),
		"",
		theme.Hint.Render("Press Enter to continue"),
	}
	return components.Card(strings.Join(lines, "\n"), cw)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
