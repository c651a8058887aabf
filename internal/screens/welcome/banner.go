package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/teamlowkey/studybuddy/internal/ui/theme"
)

const studyArt = `
 ███████╗████████╗██╗   ██╗██████╗ ██╗   ██╗
 ██╔════╝╚══██╔══╝██║   ██║██╔══██╗╚██╗ ██╔╝
 ███████╗   ██║   ██║   ██║██║  ██║ ╚████╔╝
 ╚════██║   ██║   ██║   ██║██║  ██║  ╚██╔╝
 ███████║   ██║   ╚██████╔╝██████╔╝   ██║
 ╚══════╝   ╚═╝    ╚═════╝ ╚═════╝    ╚═╝`

const buddyArt = `
 ██████╗ ██╗   ██╗██████╗ ██████╗ ██╗   ██╗
 ██╔══██╗██║   ██║██╔══██╗██╔══██╗╚██╗ ██╔╝
 ██████╔╝██║   ██║██║  ██║██║  ██║ ╚████╔╝
 ██╔══██╗██║   ██║██║  ██║██║  ██║  ╚██╔╝
 ██████╔╝╚██████╔╝██████╔╝██████╔╝   ██║
 ╚═════╝  ╚═════╝ ╚═════╝ ╚═════╝    ╚═╝`

const bannerCompact = "S T U D Y  B U D D Y"

// RenderBanner returns the two-tone STUDYBUDDY banner. Terminals narrower
// than 92 columns get a compact one-line version.
func RenderBanner(width int) string {
	study := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	buddy := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	if width < 92 {
		return study.Render(bannerCompact[:9]) + buddy.Render(bannerCompact[9:])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, study.Render(studyArt), buddy.Render(buddyArt))
}
