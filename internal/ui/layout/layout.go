package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/teamlowkey/studybuddy/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	CompactWidthThreshold = 110

	// SidebarWidth is the width of the expanded side navigation.
	SidebarWidth = 24
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// Wordmark renders "StudyBuddy" with the second word in the accent color.
func Wordmark() string {
	return lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Study") +
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Buddy")
}

// RenderHeader renders the application header bar. user is shown on the
// right when set.
func RenderHeader(title, user string, width int) string {
	left := "  " + Wordmark()

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	right := ""
	if user != "" {
		right = lipgloss.NewStyle().Foreground(theme.Accent).Render(user)
	}

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := max(width-4, 0)

	leftGap := max((innerWidth-centerLen)/2-leftLen, 1)
	rightGap := max(innerWidth-leftLen-leftGap-centerLen-rightLen, 1)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	content := "  " + strings.Join(parts, "   ")

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}

// RenderSidebar renders the side navigation. active is the label to
// highlight.
func RenderSidebar(items []string, active string, height int) string {
	var b strings.Builder
	b.WriteString(Wordmark())
	b.WriteString("\n\n")
	for _, item := range items {
		if item == active {
			b.WriteString(theme.Selected.Render("▸ " + item))
		} else {
			b.WriteString(theme.Unselected.Render("  " + item))
		}
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Width(SidebarWidth).
		Height(height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(b.String())
}

// Section renders a titled card of the given width.
func Section(title, body string, width int) string {
	head := theme.Title.Render(title)
	return theme.Card.Width(width).Render(head + "\n" + body)
}
