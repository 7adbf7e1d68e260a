package forms

import (
	tea "charm.land/bubbletea/v2"
)

// FormState represents the state of the form
type FormState int

const (
	StateInProgress FormState = iota
	StateCompleted
	StateAborted
)

// Field is the interface that all form fields must implement
type Field interface {
	// Update handles messages and updates the field
	Update(tea.Msg) (Field, tea.Cmd)

	// View renders the field
	View() string

	// Focus focuses the field
	Focus() tea.Cmd

	// Blur removes focus from the field
	Blur()

	// Focused returns whether the field is focused
	Focused() bool

	// Key returns the field's key (used to retrieve values)
	Key() string

	// Value returns the current value as text
	Value() string

	// Reset restores the field's initial value
	Reset()
}

// Form manages a collection of fields.
// tab and shift+tab move focus; the owner decides when to Submit.
type Form struct {
	fields       []Field
	focusedIndex int
	state        FormState
}

// NewForm creates a new form with the given fields
func NewForm(fields ...Field) *Form {
	return &Form{
		fields:       fields,
		focusedIndex: 0,
		state:        StateInProgress,
	}
}

// Init focuses the first field
func (f *Form) Init() tea.Cmd {
	if len(f.fields) > 0 {
		return f.fields[0].Focus()
	}
	return nil
}

// Update handles messages for the form
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if f.state != StateInProgress {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			f.state = StateAborted
			return f, nil

		case "tab", "shift+tab":
			return f, f.handleTabNavigation(keyMsg.String() == "shift+tab")
		}
	}

	// Forward message to focused field
	if f.focusedIndex < len(f.fields) {
		var cmd tea.Cmd
		f.fields[f.focusedIndex], cmd = f.fields[f.focusedIndex].Update(msg)
		return f, cmd
	}

	return f, nil
}

// handleTabNavigation moves focus between fields
func (f *Form) handleTabNavigation(reverse bool) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}

	next := f.focusedIndex + 1
	if reverse {
		next = f.focusedIndex - 1
	}
	return f.FocusIndex((next + len(f.fields)) % len(f.fields))
}

// FocusIndex moves focus to the i-th field
func (f *Form) FocusIndex(i int) tea.Cmd {
	if i < 0 || i >= len(f.fields) {
		return nil
	}
	f.fields[f.focusedIndex].Blur()
	f.focusedIndex = i
	return f.fields[i].Focus()
}

// FocusedIndex returns the index of the focused field
func (f *Form) FocusedIndex() int {
	return f.focusedIndex
}

// FocusedKey returns the key of the focused field
func (f *Form) FocusedKey() string {
	if f.focusedIndex < len(f.fields) {
		return f.fields[f.focusedIndex].Key()
	}
	return ""
}

// View renders the form
func (f *Form) View() string {
	s := ""
	for _, field := range f.fields {
		s += field.View() + "\n\n"
	}
	return s
}

// State returns the current form state
func (f *Form) State() FormState {
	return f.state
}

// Submit marks the form as completed
func (f *Form) Submit() {
	f.state = StateCompleted
}

// Abort marks the form as aborted
func (f *Form) Abort() {
	f.state = StateAborted
}

// Reset restores every field, returns the form to in-progress and focuses the first field
func (f *Form) Reset() tea.Cmd {
	for _, field := range f.fields {
		field.Reset()
	}
	f.state = StateInProgress
	return f.FocusIndex(0)
}

// Get retrieves a field by key
func (f *Form) Get(key string) Field {
	for _, field := range f.fields {
		if field.Key() == key {
			return field
		}
	}
	return nil
}

// Value returns the value of the field with key, or ""
func (f *Form) Value(key string) string {
	if field := f.Get(key); field != nil {
		return field.Value()
	}
	return ""
}

// Values returns every field value by key
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		out[field.Key()] = field.Value()
	}
	return out
}
