package dashboard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/teamlowkey/studybuddy/internal/recommend"
	"github.com/teamlowkey/studybuddy/internal/ui/layout"
	"github.com/teamlowkey/studybuddy/internal/ui/theme"
)

func typeIcon(t recommend.ResourceType) (string, lipgloss.Style) {
	switch t {
	case recommend.TypeVideo:
		return "▶", lipgloss.NewStyle().Foreground(theme.Error)
	case recommend.TypeQuiz:
		return "✓", lipgloss.NewStyle().Foreground(theme.Secondary)
	case recommend.TypeNotes:
		return "≡", lipgloss.NewStyle().Foreground(theme.Primary)
	case recommend.TypeError:
		return "!", lipgloss.NewStyle().Foreground(theme.Warning)
	}
	return "•", lipgloss.NewStyle().Foreground(theme.Accent)
}

func renderSuggestion(s recommend.Suggestion) string {
	icon, iconStyle := typeIcon(s.Type)

	var b strings.Builder
	b.WriteString(iconStyle.Render(icon) + " " + theme.Body.Bold(true).Render(s.Title))

	meta := string(s.Type)
	if s.Source != "" {
		meta += " · " + s.Source
	}
	b.WriteString("\n  " + theme.Subtitle.Render(meta))
	if s.Description != "" {
		b.WriteString("\n  " + theme.Body.Render(s.Description))
	}
	return b.String()
}

func renderList(list []recommend.Suggestion) string {
	items := make([]string, len(list))
	for i, s := range list {
		items[i] = renderSuggestion(s)
	}
	return strings.Join(items, "\n\n")
}

// RenderResources renders the AI resources panel for st. spin is the
// spinner frame shown while loading.
func RenderResources(st recommend.State, spin string, width int) string {
	var body string

	switch s := st.(type) {
	case recommend.Loading:
		body = spin + " " + theme.Hint.Render("Finding resources for your weak areas...")

	case recommend.Ready:
		var parts []string
		if s.MissingCredential {
			parts = append(parts, theme.Banner.Render("No API key configured. Showing general suggestions."))
		}
		if len(s.Suggestions) == 0 {
			parts = append(parts, theme.Hint.Render("No suggestions came back. Press r to try again."))
		} else {
			parts = append(parts, renderList(s.Suggestions))
		}
		body = strings.Join(parts, "\n\n")

	case recommend.Failed:
		body = theme.Banner.Render(fmt.Sprintf("Couldn't load AI suggestions: %s", s.Reason())) +
			"\n\n" + renderList(s.Fallback) +
			"\n\n" + theme.Hint.Render("Press r to retry.")

	default:
		body = theme.Hint.Render("Press r to load suggestions.")
	}

	return layout.Section("AI Recommended Resources", body, width)
}
