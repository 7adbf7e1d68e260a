package forms

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea is a multi-line text input field
type TextArea struct {
	key      string
	title    string
	initial  string
	textarea textarea.Model
}

// NewTextArea creates a new text area field. charLimit 0 means unlimited.
func NewTextArea(key, title, placeholder string, charLimit int, initial string) *TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = charLimit
	ta.ShowLineNumbers = false
	ta.SetHeight(5)
	ta.SetValue(initial)

	return &TextArea{
		key:      key,
		title:    title,
		initial:  initial,
		textarea: ta,
	}
}

// SetSize sets the visible size of the text area
func (t *TextArea) SetSize(width, height int) {
	t.textarea.SetWidth(width)
	t.textarea.SetHeight(height)
}

// Update handles messages
func (t *TextArea) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.textarea, cmd = t.textarea.Update(msg)
	return t, cmd
}

// View renders the text area
func (t *TextArea) View() string {
	if t.title == "" {
		return t.textarea.View()
	}
	return titleStyle(t.Focused()).Render(t.title) + "\n" + t.textarea.View()
}

// Focus focuses the text area
func (t *TextArea) Focus() tea.Cmd {
	return t.textarea.Focus()
}

// Blur removes focus
func (t *TextArea) Blur() {
	t.textarea.Blur()
}

// Focused returns whether the textarea is focused
func (t *TextArea) Focused() bool {
	return t.textarea.Focused()
}

// Key returns the field key
func (t *TextArea) Key() string {
	return t.key
}

// Value returns the current value
func (t *TextArea) Value() string {
	return t.textarea.Value()
}

// SetValue replaces the current value and makes it the reset value
func (t *TextArea) SetValue(v string) {
	t.initial = v
	t.textarea.SetValue(v)
}

// Reset restores the initial value
func (t *TextArea) Reset() {
	t.textarea.SetValue(t.initial)
}

// Dirty reports whether the text differs from the last SetValue
func (t *TextArea) Dirty() bool {
	return t.textarea.Value() != t.initial
}
