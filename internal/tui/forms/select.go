package forms

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// Select picks one value from a fixed list of options
type Select struct {
	key     string
	title   string
	options []string
	initial int
	cursor  int
	focused bool
}

// NewSelect creates a select field. initial is preselected when it is one of options.
func NewSelect(key, title string, options []string, initial string) *Select {
	s := &Select{key: key, title: title, options: options}
	for i, o := range options {
		if strings.EqualFold(o, initial) {
			s.initial = i
		}
	}
	s.cursor = s.initial
	return s
}

// Update moves the selection with left/right, h/l, up/down, k/j or space
func (s *Select) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !s.focused || len(s.options) == 0 {
		return s, nil
	}
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "left", "h", "up", "k":
			s.cursor = (s.cursor - 1 + len(s.options)) % len(s.options)
		case "right", "l", "down", "j", " ":
			s.cursor = (s.cursor + 1) % len(s.options)
		}
	}
	return s, nil
}

// View renders the options on one line with the current one highlighted
func (s *Select) View() string {
	parts := make([]string, len(s.options))
	for i, o := range s.options {
		parts[i] = optionStyle(i == s.cursor).Render(o)
	}
	return titleStyle(s.focused).Render(s.title) + "\n" + strings.Join(parts, " ")
}

// Focus focuses the field
func (s *Select) Focus() tea.Cmd {
	s.focused = true
	return nil
}

// Blur removes focus
func (s *Select) Blur() {
	s.focused = false
}

// Focused returns whether the field is focused
func (s *Select) Focused() bool {
	return s.focused
}

// Key returns the field key
func (s *Select) Key() string {
	return s.key
}

// Value returns the selected option
func (s *Select) Value() string {
	if len(s.options) == 0 {
		return ""
	}
	return s.options[s.cursor]
}

// Reset selects the initial option again
func (s *Select) Reset() {
	s.cursor = s.initial
}
