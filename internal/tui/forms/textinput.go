package forms

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput is a single-line text input field
type TextInput struct {
	key     string
	title   string
	initial string
	input   textinput.Model
}

// NewTextInput creates a new text input field
func NewTextInput(key, title, placeholder, initial string) *TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(initial)

	return &TextInput{
		key:     key,
		title:   title,
		initial: initial,
		input:   ti,
	}
}

// Password hides the typed characters
func (t *TextInput) Password() *TextInput {
	t.input.EchoMode = textinput.EchoPassword
	return t
}

// SetWidth sets the visible width of the input
func (t *TextInput) SetWidth(w int) {
	t.input.SetWidth(w)
}

// Update handles messages
func (t *TextInput) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

// View renders the text input
func (t *TextInput) View() string {
	return titleStyle(t.Focused()).Render(t.title) + "\n" + t.input.View()
}

// Focus focuses the text input
func (t *TextInput) Focus() tea.Cmd {
	return t.input.Focus()
}

// Blur removes focus
func (t *TextInput) Blur() {
	t.input.Blur()
}

// Focused returns whether the input is focused
func (t *TextInput) Focused() bool {
	return t.input.Focused()
}

// Key returns the field key
func (t *TextInput) Key() string {
	return t.key
}

// Value returns the current value
func (t *TextInput) Value() string {
	return t.input.Value()
}

// SetValue replaces the current value and makes it the reset value
func (t *TextInput) SetValue(v string) {
	t.initial = v
	t.input.SetValue(v)
}

// Reset restores the initial value
func (t *TextInput) Reset() {
	t.input.SetValue(t.initial)
}
