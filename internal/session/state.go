package session

import (
	"maps"
	"slices"

	"github.com/abhisek/svenska/internal/progress"
)

// View is the screen the controller has selected.
type View int

const (
	ViewWelcome View = iota
	ViewFlashcard
	ViewChallenge
	ViewScramble
	ViewGrammar
	ViewQuiz
	ViewSummary
)

var modeViews = map[progress.Mode]View{
	progress.ModeFlashcard: ViewFlashcard,
	progress.ModeChallenge: ViewChallenge,
	progress.ModeScramble:  ViewScramble,
	progress.ModeGrammar:   ViewGrammar,
	progress.ModeQuiz:      ViewQuiz,
}

// ViewFor returns the view that plays mode.
func ViewFor(mode progress.Mode) (View, bool) {
	v, ok := modeViews[mode]
	return v, ok
}

// Mode returns the practice mode shown by v, if any.
func (v View) Mode() (progress.Mode, bool) {
	for m, mv := range modeViews {
		if mv == v {
			return m, true
		}
	}
	return "", false
}

func (v View) String() string {
	switch v {
	case ViewWelcome:
		return "welcome"
	case ViewSummary:
		return "summary"
	}
	if m, ok := v.Mode(); ok {
		return string(m)
	}
	return "unknown"
}

// State is everything the controller owns. Level and Week are derived from
// Stats and CompletedDates and are never persisted.
type State struct {
	Stats          progress.UserStats
	Progress       progress.ActivityProgress
	History        []progress.DailyResult
	CompletedDates []string
	View           View

	Level progress.LevelInfo
	Week  progress.WeekStatus
}

// clone returns a copy that shares no slices or maps with s.
func (s State) clone() State {
	out := s
	out.Progress.CompletedModes = slices.Clone(s.Progress.CompletedModes)
	out.Progress.Points = maps.Clone(s.Progress.Points)
	out.Progress.MissedItems = slices.Clone(s.Progress.MissedItems)
	out.History = slices.Clone(s.History)
	out.CompletedDates = slices.Clone(s.CompletedDates)
	return out
}

// Completion is the report a practice mode sends when it finishes.
type Completion struct {
	Mode     progress.Mode
	XP       int
	Points   int
	Missed   []progress.MissedItem
	Duration int64 // milliseconds spent in the mode
}

// Outcome describes what a completion changed.
type Outcome struct {
	View View

	// Accepted is false when the mode had already been completed today.
	Accepted bool

	// NewDay is set when this was the first completion of the day.
	NewDay bool
	Streak int

	LeveledUp bool
	Level     progress.LevelInfo

	// Result is set when the completion finished the day.
	Result *progress.DailyResult
}
