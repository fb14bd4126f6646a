package practice

import (
	"math/rand/v2"
	"time"

	"github.com/abhisek/svenska/internal/content"
	"github.com/abhisek/svenska/internal/progress"
)

const (
	// DefaultChallengeDuration is the length of a timed round.
	DefaultChallengeDuration = 60 * time.Second

	// ChallengeOptions is the number of choices per question.
	ChallengeOptions = 5
)

// ChallengePoints scores a correct answer given after elapsed:
// max(1, 10 - whole seconds elapsed).
func ChallengePoints(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	return max(1, 10-int(elapsed/time.Second))
}

// ChallengeQuestion is one multiple-choice item.
type ChallengeQuestion struct {
	Swedish string
	Options []string
	Correct string
}

// Challenge is a timed multiple-choice round. Questions are drawn at random
// with replacement until time runs out.
type Challenge struct {
	words    []content.Word
	rng      *rand.Rand
	duration time.Duration

	started   time.Time
	shownAt   time.Time
	question  ChallengeQuestion
	answered  bool
	selected  string
	score     int
	attempted int
	correct   int
}

// NewChallenge creates a round. It needs at least ChallengeOptions words.
func NewChallenge(words []content.Word, rng *rand.Rand, duration time.Duration) (*Challenge, error) {
	if len(words) < ChallengeOptions {
		return nil, ErrTooFewWords
	}
	if duration <= 0 {
		duration = DefaultChallengeDuration
	}
	return &Challenge{words: words, rng: rng, duration: duration}, nil
}

// Start begins the round at now and shows the first question.
func (c *Challenge) Start(now time.Time) {
	c.started = now
	c.score, c.attempted, c.correct = 0, 0, 0
	c.NextQuestion(now)
}

// NextQuestion draws a new question shown at now.
func (c *Challenge) NextQuestion(now time.Time) {
	pool := make([]content.Word, len(c.words))
	copy(pool, c.words)
	i := c.rng.IntN(len(pool))
	target := pool[i]
	pool = append(pool[:i], pool[i+1:]...)

	options := make([]string, 0, ChallengeOptions)
	options = append(options, target.English)
	for _, w := range shuffled(c.rng, pool)[:ChallengeOptions-1] {
		options = append(options, w.English)
	}

	c.question = ChallengeQuestion{
		Swedish: target.Swedish,
		Options: shuffled(c.rng, options),
		Correct: target.English,
	}
	c.shownAt = now
	c.answered = false
	c.selected = ""
}

// Question returns the question on screen.
func (c *Challenge) Question() ChallengeQuestion { return c.question }

// Answered reports whether the current question has been answered.
func (c *Challenge) Answered() bool { return c.answered }

// Selected returns the option picked for the current question.
func (c *Challenge) Selected() string { return c.selected }

// Answer records option as the answer given at now and returns the points
// it earned. A second answer to the same question, or one after time is up,
// scores nothing.
func (c *Challenge) Answer(option string, now time.Time) (bool, int) {
	if c.answered || c.Over(now) {
		return false, 0
	}
	c.answered = true
	c.selected = option
	c.attempted++
	if option != c.question.Correct {
		return false, 0
	}
	pts := ChallengePoints(now.Sub(c.shownAt))
	c.score += pts
	c.correct++
	return true, pts
}

// Remaining returns the time left at now, never negative.
func (c *Challenge) Remaining(now time.Time) time.Duration {
	return max(0, c.duration-now.Sub(c.started))
}

// Duration returns the length of the round.
func (c *Challenge) Duration() time.Duration { return c.duration }

// Over reports whether time has run out.
func (c *Challenge) Over(now time.Time) bool {
	return c.Remaining(now) == 0
}

// Score returns the points accrued so far.
func (c *Challenge) Score() int { return c.score }

// Tally returns questions answered and answered correctly.
func (c *Challenge) Tally() (int, int) { return c.attempted, c.correct }

// Result reports the score as both XP and points.
func (c *Challenge) Result() Result {
	return Result{
		Mode:   progress.ModeChallenge,
		XP:     c.score,
		Points: c.score,
		Missed: []progress.MissedItem{},
	}
}
