package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is one set of brand colors.
type Palette struct {
	Name      string
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Warning   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
}

// Brand colors: deep blue outline, graph green, sky accents.
var Default = Palette{
	Name:      "default",
	Primary:   lipgloss.Color("#3B82F6"), // Blue
	Secondary: lipgloss.Color("#10B981"), // Emerald
	Accent:    lipgloss.Color("#22D3EE"), // Cyan
	Success:   lipgloss.Color("#34D399"),
	Warning:   lipgloss.Color("#F59E0B"), // Amber
	Error:     lipgloss.Color("#EF4444"),
	Text:      lipgloss.Color("#F8FAFC"),
	TextDim:   lipgloss.Color("#94A3B8"),
	BgCard:    lipgloss.Color("#172554"), // Blue 950
	Border:    lipgloss.Color("#1E3A8A"),
}

// Dark is the low-glare palette used in study mode.
var Dark = Palette{
	Name:      "dark",
	Primary:   lipgloss.Color("#64748B"),
	Secondary: lipgloss.Color("#059669"),
	Accent:    lipgloss.Color("#0E7490"),
	Success:   lipgloss.Color("#15803D"),
	Warning:   lipgloss.Color("#B45309"),
	Error:     lipgloss.Color("#B91C1C"),
	Text:      lipgloss.Color("#CBD5E1"),
	TextDim:   lipgloss.Color("#475569"),
	BgCard:    lipgloss.Color("#020617"),
	Border:    lipgloss.Color("#1E293B"),
}

var active = Default

// Color palette of the active theme.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Warning   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
)

// Styles built from the active palette.
var (
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Body       lipgloss.Style
	Hint       lipgloss.Style
	Card       lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
	Banner     lipgloss.Style

	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

func init() { Apply(Default) }

// Active returns the palette currently in use.
func Active() Palette { return active }

// Apply switches the package colors and styles to p. Call it from the UI
// goroutine only.
func Apply(p Palette) {
	active = p
	Primary, Secondary, Accent = p.Primary, p.Secondary, p.Accent
	Success, Warning, Error = p.Success, p.Warning, p.Error
	Text, TextDim, BgCard, Border = p.Text, p.TextDim, p.BgCard, p.Border

	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim)
	Body = lipgloss.NewStyle().Foreground(Text)
	Hint = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	Selected = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect = lipgloss.NewStyle().Foreground(Error).Bold(true)

	// Warning banner for offline mode and failed fetches.
	Banner = lipgloss.NewStyle().
		Foreground(Warning).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(Warning).
		PaddingLeft(1)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(Text).
		Bold(true).
		Padding(0, 2)
	ButtonInactive = lipgloss.NewStyle().
		Foreground(TextDim).
		Padding(0, 2)
}
