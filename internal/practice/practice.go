// Package practice implements the five practice modes as pure state
// machines. Screens drive them with learner input and hand the final Result
// to the session controller.
package practice

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/svenska/internal/progress"
)

// ErrTooFewWords is returned when a mode needs more words than it was given.
var ErrTooFewWords = errors.New("not enough words")

// Result is what a finished mode reports to the session controller.
type Result struct {
	Mode   progress.Mode
	XP     int
	Points int
	Missed []progress.MissedItem
}

// Status is the state of the current item in the answer-checking modes.
type Status int

const (
	StatusPlaying Status = iota
	StatusCorrect
	StatusIncorrect
	// StatusRevealed means the learner is out of attempts and the answer is
	// shown.
	StatusRevealed
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	case StatusRevealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// Normalize lower-cases s, strips sentence punctuation and collapses
// whitespace so typed and assembled answers compare by words alone.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '.', ',', '?', '!':
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// attemptPoints is the score for a correct answer on the given attempt.
func attemptPoints(attempt int) int {
	switch attempt {
	case 1:
		return 2
	case 2:
		return 1
	default:
		return 0
	}
}

func shuffled[T any](rng *rand.Rand, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
