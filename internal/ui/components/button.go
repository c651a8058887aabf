package components

import (
	"github.com/teamlowkey/studybuddy/internal/ui/theme"
)

// Button is a styled button label. Focused buttons are highlighted.
type Button struct {
	Label   string
	Focused bool
}

// View renders the button.
func (b Button) View() string {
	if b.Focused {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render("  " + b.Label)
}
