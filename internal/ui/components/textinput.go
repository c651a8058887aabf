package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/teamlowkey/studybuddy/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and an error line.
type TextInput struct {
	Label string
	Model textinput.Model
	Err   string
}

// NewTextInput creates a new labelled text input. It starts blurred.
func NewTextInput(label, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Label: label, Model: ti}
}

func (t *TextInput) Focus() tea.Cmd { return t.Model.Focus() }
func (t *TextInput) Blur()          { t.Model.Blur() }

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label, the input and any error.
func (t TextInput) View() string {
	label := theme.Subtitle.Render(t.Label)
	if t.Model.Focused() {
		label = theme.Selected.Render(t.Label)
	}
	view := label + "\n" + t.Model.View()
	if t.Err != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(t.Err)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}
