package practice

import (
	"slices"

	"github.com/abhisek/svenska/internal/content"
	"github.com/abhisek/svenska/internal/progress"
)

// Grammar rewards per correct answer.
const (
	GrammarXP     = 10
	GrammarPoints = 2
)

// Grammar runs a fixed list of multiple-choice questions. Each question is
// answered once and its explanation shown before moving on.
type Grammar struct {
	questions []content.GrammarQuestion

	index    int
	answered bool
	chosen   string
	done     bool

	correct    int
	missedList []progress.MissedItem
}

// NewGrammar creates a round over questions in order.
func NewGrammar(questions []content.GrammarQuestion) (*Grammar, error) {
	if len(questions) == 0 {
		return nil, ErrTooFewWords
	}
	return &Grammar{questions: questions, missedList: []progress.MissedItem{}}, nil
}

// Current returns the question on screen.
func (g *Grammar) Current() content.GrammarQuestion { return g.questions[g.index] }

// Position returns the zero-based question index and the round size.
func (g *Grammar) Position() (int, int) { return g.index, len(g.questions) }

// Answered reports whether the current question has been answered.
func (g *Grammar) Answered() bool { return g.answered }

// Chosen returns the option picked for the current question.
func (g *Grammar) Chosen() string { return g.chosen }

// Answer records option for the current question. Repeat answers are
// ignored and report the first outcome.
func (g *Grammar) Answer(option string) bool {
	q := g.Current()
	if g.answered {
		return g.chosen == q.CorrectAnswer
	}
	g.answered = true
	g.chosen = option
	if option == q.CorrectAnswer {
		g.correct++
		return true
	}
	g.missedList = append(g.missedList, progress.MissedItem{
		Mode:          progress.ModeGrammar,
		Question:      q.Question,
		UserAnswer:    option,
		CorrectAnswer: q.CorrectAnswer,
	})
	return false
}

// Next moves to the following question. It reports false when the round
// is over.
func (g *Grammar) Next() bool {
	if g.index+1 >= len(g.questions) {
		g.done = true
		return false
	}
	g.index++
	g.answered = false
	g.chosen = ""
	return true
}

// Done reports whether the last question has been passed.
func (g *Grammar) Done() bool { return g.done }

// Correct returns the number of correct answers so far.
func (g *Grammar) Correct() int { return g.correct }

// Result returns the accrued XP, points and missed questions.
func (g *Grammar) Result() Result {
	return Result{
		Mode:   progress.ModeGrammar,
		XP:     g.correct * GrammarXP,
		Points: g.correct * GrammarPoints,
		Missed: slices.Clone(g.missedList),
	}
}
