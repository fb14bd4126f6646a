package practice

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/abhisek/svenska/internal/content"
	"github.com/abhisek/svenska/internal/progress"
)

// ScrambleXP is awarded per correctly assembled sentence.
const ScrambleXP = 5

// Tile is one word in the bank or the answer line. ID is its position in
// the original sentence and keeps repeated words distinct.
type Tile struct {
	ID   int
	Word string
}

// Scramble asks the learner to rebuild Swedish sentences from shuffled
// words.
type Scramble struct {
	sentences []content.Sentence
	rng       *rand.Rand

	index    int
	bank     []Tile
	answer   []Tile
	attempts int
	status   Status
	missed   bool
	done     bool

	xp, points int
	missedList []progress.MissedItem
}

// NewScramble creates a round over sentences in the given order.
func NewScramble(sentences []content.Sentence, rng *rand.Rand) (*Scramble, error) {
	if len(sentences) == 0 {
		return nil, ErrTooFewWords
	}
	s := &Scramble{sentences: sentences, rng: rng, missedList: []progress.MissedItem{}}
	s.load()
	return s, nil
}

func (s *Scramble) load() {
	s.attempts = 0
	s.missed = false
	s.status = StatusPlaying
	s.deal()
}

// deal resets the answer line and reshuffles the bank.
func (s *Scramble) deal() {
	words := strings.Fields(Normalize(s.Current().Swedish))
	tiles := make([]Tile, len(words))
	for i, w := range words {
		tiles[i] = Tile{ID: i, Word: w}
	}
	s.bank = shuffled(s.rng, tiles)
	s.answer = nil
}

// Current returns the sentence being assembled.
func (s *Scramble) Current() content.Sentence { return s.sentences[s.index] }

// Position returns the zero-based sentence index and the round size.
func (s *Scramble) Position() (int, int) { return s.index, len(s.sentences) }

// Bank returns the words not yet placed.
func (s *Scramble) Bank() []Tile { return slices.Clone(s.bank) }

// Answer returns the words placed so far, in order.
func (s *Scramble) Answer() []Tile { return slices.Clone(s.answer) }

// Status returns the state of the current sentence.
func (s *Scramble) Status() Status { return s.status }

// Attempts returns the number of checks made on the current sentence.
func (s *Scramble) Attempts() int { return s.attempts }

// Place moves bank tile i to the end of the answer line.
func (s *Scramble) Place(i int) bool {
	if s.status != StatusPlaying || i < 0 || i >= len(s.bank) {
		return false
	}
	s.answer = append(s.answer, s.bank[i])
	s.bank = slices.Delete(s.bank, i, i+1)
	return true
}

// Remove returns answer tile i to the bank, which is kept in sentence order
// once tiles come back.
func (s *Scramble) Remove(i int) bool {
	if s.status != StatusPlaying || i < 0 || i >= len(s.answer) {
		return false
	}
	s.bank = append(s.bank, s.answer[i])
	s.answer = slices.Delete(s.answer, i, i+1)
	slices.SortStableFunc(s.bank, func(a, b Tile) int { return a.ID - b.ID })
	return true
}

func joinTiles(tiles []Tile) string {
	words := make([]string, len(tiles))
	for i, t := range tiles {
		words[i] = t.Word
	}
	return strings.Join(words, " ")
}

// Check compares the answer line with the sentence. Points depend on the
// attempt; a second or later failure records the sentence as missed once.
func (s *Scramble) Check() Status {
	if s.status != StatusPlaying || len(s.answer) == 0 {
		return s.status
	}
	s.attempts++
	given := joinTiles(s.answer)
	cur := s.Current()

	if given == Normalize(cur.Swedish) {
		s.status = StatusCorrect
		s.points += attemptPoints(s.attempts)
		s.xp += ScrambleXP
		return s.status
	}

	s.status = StatusIncorrect
	if s.attempts >= 2 && !s.missed {
		s.missed = true
		s.missedList = append(s.missedList, progress.MissedItem{
			Mode:          progress.ModeScramble,
			Question:      cur.English,
			UserAnswer:    given,
			CorrectAnswer: cur.Swedish,
		})
	}
	return s.status
}

// Retry clears an incorrect answer and reshuffles the bank.
func (s *Scramble) Retry() {
	if s.status != StatusIncorrect {
		return
	}
	s.status = StatusPlaying
	s.deal()
}

// Next moves to the following sentence. It reports false when the round is
// over.
func (s *Scramble) Next() bool {
	if s.index+1 >= len(s.sentences) {
		s.done = true
		return false
	}
	s.index++
	s.load()
	return true
}

// Done reports whether every sentence has been passed.
func (s *Scramble) Done() bool { return s.done }

// Result returns the accrued XP, points and missed sentences.
func (s *Scramble) Result() Result {
	return Result{
		Mode:   progress.ModeScramble,
		XP:     s.xp,
		Points: s.points,
		Missed: slices.Clone(s.missedList),
	}
}
