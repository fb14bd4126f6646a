// Package theme holds the palette and shared styles. Colors follow the
// Swedish flag on a navy background.
package theme

import "charm.land/lipgloss/v2"

var (
	Primary   = lipgloss.Color("#3B82F6") // flag blue, lightened
	Secondary = lipgloss.Color("#FECC02") // flag yellow
	Accent    = lipgloss.Color("#F59E0B")
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

var (
	Title    = lipgloss.NewStyle().Foreground(Secondary).Bold(true).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Warning  = lipgloss.NewStyle().Foreground(Accent)
)

// Answer feedback and list states.
var (
	Selected   = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)
	Done       = lipgloss.NewStyle().Foreground(Success)
)

// Word tiles in the sentence scramble: Tile is still in the pool, TilePlaced
// is part of the answer being built.
var (
	Tile = lipgloss.NewStyle().
		Foreground(Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)
	TilePlaced = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Secondary).
			Bold(true).
			Padding(0, 1)
)
