package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/svenska/internal/ui/theme"
)

const bannerArt = ` ███████╗██╗   ██╗███████╗███╗   ██╗███████╗██╗  ██╗ █████╗
 ██╔════╝██║   ██║██╔════╝████╗  ██║██╔════╝██║ ██╔╝██╔══██╗
 ███████╗██║   ██║█████╗  ██╔██╗ ██║███████╗█████╔╝ ███████║
 ╚════██║╚██╗ ██╔╝██╔══╝  ██║╚██╗██║╚════██║██╔═██╗ ██╔══██║
 ███████║ ╚████╔╝ ███████╗██║ ╚████║███████║██║  ██╗██║  ██║
 ╚══════╝  ╚═══╝  ╚══════╝╚═╝  ╚═══╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝`

const bannerCompact = "S · V · E · N · S · K · A"

// bannerMinWidth is the narrowest content width that fits the block art.
const bannerMinWidth = 62

// RenderBanner returns the SVENSKA banner in flag yellow, falling back to a
// one-line title when compact is set or the width is too small.
func RenderBanner(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true)

	art := bannerArt
	if compact || cw < bannerMinWidth {
		art = bannerCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}
