// Package configerror explains how to configure a content provider when
// none is available.
package configerror

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/svenska/internal/screen"
	"github.com/abhisek/svenska/internal/ui/layout"
	"github.com/abhisek/svenska/internal/ui/theme"
)

// ConfigErrorScreen blocks the app until the user quits.
type ConfigErrorScreen struct {
	configPath string
}

var _ screen.Screen = (*ConfigErrorScreen)(nil)
var _ screen.KeyHintProvider = (*ConfigErrorScreen)(nil)

// New creates a ConfigErrorScreen pointing at configPath.
func New(configPath string) *ConfigErrorScreen {
	return &ConfigErrorScreen{configPath: configPath}
}

func (p *ConfigErrorScreen) Init() tea.Cmd {
	return nil
}

func (p *ConfigErrorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter/Q", Description: "Quit"}}
}

func (p *ConfigErrorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "q":
			return p, tea.Quit
		}
	}
	return p, nil
}

func (p *ConfigErrorScreen) View(width, height int) string {
	lines := []string{
		theme.Incorrect.Render("No LLM provider configured"),
		"",
		theme.Body.Render("Svenska needs an API key to generate daily words."),
		theme.Body.Render("Set one of these environment variables:"),
		"",
		theme.Selected.Render("GEMINI_API_KEY   ANTHROPIC_API_KEY"),
		theme.Selected.Render("OPENAI_API_KEY   OPENROUTER_API_KEY"),
		"",
		theme.Body.Render("or add it to the config file:"),
		theme.Hint.Render(p.configPath),
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(strings.Join(lines, "\n"))
}

func (p *ConfigErrorScreen) Title() string {
	return "Setup"
}
