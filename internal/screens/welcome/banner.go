package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/kisanlabs/plantdoctor/internal/ui/theme"
)

const bannerArt = `
 ██╗  ██╗██╗███████╗ █████╗ ███╗   ██╗
 ██║ ██╔╝██║██╔════╝██╔══██╗████╗  ██║
 █████╔╝ ██║███████╗███████║██╔██╗ ██║
 ██╔═██╗ ██║╚════██║██╔══██║██║╚██╗██║
 ██║  ██╗██║███████║██║  ██║██║ ╚████║
 ╚═╝  ╚═╝╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═══╝
          P L A N T   D O C T O R`

const bannerCompact = "K I S A N  ·  Plant Doctor"

// RenderBanner returns the KISAN banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 42 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 42 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
