package screen

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/svenska/internal/practice"
	"github.com/abhisek/svenska/internal/progress"
	"github.com/abhisek/svenska/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StartModeMsg asks the app to open a practice mode.
type StartModeMsg struct {
	Mode progress.Mode
}

// ModeDoneMsg reports a finished practice mode.
type ModeDoneMsg struct {
	Result   practice.Result
	Duration time.Duration
}

// ExitMsg asks the app to return to the welcome screen without recording
// anything.
type ExitMsg struct{}

// HistoryMsg asks the app to open the daily result history.
type HistoryMsg struct{}

// NewWordsMsg asks the app to fetch a new word set and restart the day's
// activities.
type NewWordsMsg struct{}

// Cmd wraps msg in a command.
func Cmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
