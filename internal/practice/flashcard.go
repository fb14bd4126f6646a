package practice

import (
	"github.com/abhisek/svenska/internal/content"
	"github.com/abhisek/svenska/internal/progress"
)

// Flashcard rewards.
const (
	FlashcardXP     = 20
	FlashcardPoints = 40
)

// Flashcards is a deck the learner pages through.
type Flashcards struct {
	words   []content.Word
	index   int
	flipped bool
}

// NewFlashcards creates a deck in the given order.
func NewFlashcards(words []content.Word) (*Flashcards, error) {
	if len(words) == 0 {
		return nil, ErrTooFewWords
	}
	return &Flashcards{words: words}, nil
}

// Current returns the card on top.
func (f *Flashcards) Current() content.Word { return f.words[f.index] }

// Position returns the zero-based card index and the deck size.
func (f *Flashcards) Position() (int, int) { return f.index, len(f.words) }

// Flipped reports whether the English side is showing.
func (f *Flashcards) Flipped() bool { return f.flipped }

// Flip turns the current card over.
func (f *Flashcards) Flip() { f.flipped = !f.flipped }

// Next moves to the following card. It reports false on the last card.
func (f *Flashcards) Next() bool {
	if f.index+1 >= len(f.words) {
		return false
	}
	f.index++
	f.flipped = false
	return true
}

// Prev moves to the preceding card. It reports false on the first card.
func (f *Flashcards) Prev() bool {
	if f.index == 0 {
		return false
	}
	f.index--
	f.flipped = false
	return true
}

// AtEnd reports whether the last card is showing.
func (f *Flashcards) AtEnd() bool { return f.index == len(f.words)-1 }

// Result returns the fixed flashcard reward.
func (f *Flashcards) Result() Result {
	return Result{
		Mode:   progress.ModeFlashcard,
		XP:     FlashcardXP,
		Points: FlashcardPoints,
		Missed: []progress.MissedItem{},
	}
}
