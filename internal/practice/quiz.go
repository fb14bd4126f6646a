package practice

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/abhisek/svenska/internal/content"
	"github.com/abhisek/svenska/internal/progress"
)

const (
	// QuizXP is awarded per correctly typed word.
	QuizXP = 5

	// QuizAttempts is the number of tries before the answer is revealed.
	QuizAttempts = 2
)

// Quiz shows English words and asks for the Swedish.
type Quiz struct {
	words []content.Word

	index    int
	attempts int
	status   Status
	done     bool

	xp, points int
	missedList []progress.MissedItem
}

// NewQuiz creates a quiz over words in shuffled order.
func NewQuiz(words []content.Word, rng *rand.Rand) (*Quiz, error) {
	if len(words) == 0 {
		return nil, ErrTooFewWords
	}
	return &Quiz{words: shuffled(rng, words), missedList: []progress.MissedItem{}}, nil
}

// Current returns the word being asked.
func (q *Quiz) Current() content.Word { return q.words[q.index] }

// Position returns the zero-based word index and the quiz length.
func (q *Quiz) Position() (int, int) { return q.index, len(q.words) }

// Status returns the state of the current word.
func (q *Quiz) Status() Status { return q.status }

// AttemptsLeft returns how many more tries the current word allows.
func (q *Quiz) AttemptsLeft() int { return max(0, QuizAttempts-q.attempts) }

func normalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Submit checks a typed answer. Blank input is ignored. The final failed
// attempt records the word as missed and reveals it.
func (q *Quiz) Submit(input string) Status {
	if q.status != StatusPlaying || strings.TrimSpace(input) == "" {
		return q.status
	}
	q.attempts++
	w := q.Current()

	if normalizeWord(input) == normalizeWord(w.Swedish) {
		q.status = StatusCorrect
		q.points += attemptPoints(q.attempts)
		q.xp += QuizXP
		return q.status
	}

	if q.attempts >= 2 {
		q.missedList = append(q.missedList, progress.MissedItem{
			Mode:          progress.ModeQuiz,
			Question:      w.English,
			UserAnswer:    strings.TrimSpace(input),
			CorrectAnswer: w.Swedish,
		})
	}
	if q.attempts >= QuizAttempts {
		q.status = StatusRevealed
	} else {
		q.status = StatusIncorrect
	}
	return q.status
}

// Retry returns an incorrect word to the playing state.
func (q *Quiz) Retry() {
	if q.status == StatusIncorrect {
		q.status = StatusPlaying
	}
}

// Next moves to the following word. It reports false when the quiz is over.
func (q *Quiz) Next() bool {
	if q.index+1 >= len(q.words) {
		q.done = true
		return false
	}
	q.index++
	q.attempts = 0
	q.status = StatusPlaying
	return true
}

// Done reports whether the last word has been passed.
func (q *Quiz) Done() bool { return q.done }

// Result returns the accrued XP, points and missed words.
func (q *Quiz) Result() Result {
	return Result{
		Mode:   progress.ModeQuiz,
		XP:     q.xp,
		Points: q.points,
		Missed: slices.Clone(q.missedList),
	}
}
