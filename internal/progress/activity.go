package progress

import (
	"fmt"
	"slices"
)

// Mode identifies a practice activity.
type Mode string

const (
	ModeFlashcard Mode = "flashcard"
	ModeScramble  Mode = "scramble"
	ModeGrammar   Mode = "grammar"
	ModeChallenge Mode = "challenge"
	ModeQuiz      Mode = "quiz"
)

// AllModes is the set a day must complete before it is finalized.
var AllModes = []Mode{ModeFlashcard, ModeScramble, ModeGrammar, ModeChallenge, ModeQuiz}

// ParseMode validates a mode tag.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if slices.Contains(AllModes, m) {
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// DisplayName returns the menu label for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeFlashcard:
		return "Flashcards"
	case ModeScramble:
		return "Sentence Scramble"
	case ModeGrammar:
		return "Grammar Detective"
	case ModeChallenge:
		return "Challenge"
	case ModeQuiz:
		return "Word Quiz"
	default:
		return string(m)
	}
}

// MissedItem records an answer the learner got wrong.
type MissedItem struct {
	Mode          Mode   `json:"mode"`
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
}

// ActivityProgress is the per-day completion record.
type ActivityProgress struct {
	Date           string       `json:"date"`
	CompletedModes []Mode       `json:"completedModes"`
	Points         map[Mode]int `json:"points"`
	MissedItems    []MissedItem `json:"missedItems"`
}

// NewActivityProgress returns an empty record for day.
func NewActivityProgress(day string) ActivityProgress {
	return ActivityProgress{
		Date:           day,
		CompletedModes: []Mode{},
		Points:         map[Mode]int{},
		MissedItems:    []MissedItem{},
	}
}

// IsFor reports whether the record belongs to day.
func (p ActivityProgress) IsFor(day string) bool {
	return p.Date == day
}

// HasCompleted reports whether mode is in CompletedModes.
func (p ActivityProgress) HasCompleted(mode Mode) bool {
	return slices.Contains(p.CompletedModes, mode)
}

// RecordCompletion returns current updated with one mode completion.
// The mode is appended once, its points are overwritten and its missed
// items replace any earlier ones for that mode. current is not modified.
func RecordCompletion(current ActivityProgress, mode Mode, points int, missed []MissedItem) ActivityProgress {
	next := ActivityProgress{
		Date:           current.Date,
		CompletedModes: slices.Clone(current.CompletedModes),
		Points:         make(map[Mode]int, len(current.Points)+1),
		MissedItems:    make([]MissedItem, 0, len(current.MissedItems)+len(missed)),
	}
	if next.CompletedModes == nil {
		next.CompletedModes = []Mode{}
	}

	if !slices.Contains(next.CompletedModes, mode) {
		next.CompletedModes = append(next.CompletedModes, mode)
	}

	for m, pts := range current.Points {
		next.Points[m] = pts
	}
	next.Points[mode] = points

	for _, item := range current.MissedItems {
		if item.Mode != mode {
			next.MissedItems = append(next.MissedItems, item)
		}
	}
	next.MissedItems = append(next.MissedItems, missed...)

	return next
}

// IsAllComplete reports whether every required mode has been completed.
func IsAllComplete(p ActivityProgress, required []Mode) bool {
	for _, m := range required {
		if !p.HasCompleted(m) {
			return false
		}
	}
	return true
}
