package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledInput creates a themed text input.
func NewStyledInput(theme *Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Prompt = "> "
	return ti
}

// NewAudioPathInput creates the input used to pick audio files.
func NewAudioPathInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "Audio files, separated by spaces...")
	ti.Prompt = IconMusic + " "
	ti.CharLimit = 4096
	return ti
}

// NewNoteInput creates the input used to edit a note's text.
func NewNoteInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "Note text...")
	ti.Prompt = IconNote + " "
	ti.CharLimit = 2048
	return ti
}

// InputBox wraps a text input in a styled box.
func (t *Theme) InputBox(input string, focused bool) string {
	style := t.Input
	if focused {
		style = t.InputFocused
	}
	return style.Render(input)
}
