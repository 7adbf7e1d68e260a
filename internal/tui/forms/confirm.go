package forms

import (
	tea "charm.land/bubbletea/v2"
)

// Confirm is a yes/no confirmation field
type Confirm struct {
	key         string
	title       string
	affirmative string
	negative    string
	initial     bool
	focused     bool
	selection   bool // true = yes, false = no
	answered    bool
}

// NewConfirm creates a new confirm field
func NewConfirm(key, title, affirmative, negative string, initial bool) *Confirm {
	return &Confirm{
		key:         key,
		title:       title,
		affirmative: affirmative,
		negative:    negative,
		initial:     initial,
		selection:   initial,
	}
}

// Update handles messages. y and n answer directly; enter answers with the selection.
func (c *Confirm) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !c.focused {
		return c, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "left", "h":
			c.selection = true
		case "right", "l":
			c.selection = false
		case " ":
			c.selection = !c.selection
		case "y", "Y":
			c.selection = true
			c.answered = true
		case "n", "N":
			c.selection = false
			c.answered = true
		case "enter":
			c.answered = true
		}
	}

	return c, nil
}

// View renders the confirm field
func (c *Confirm) View() string {
	yesOption := optionStyle(c.selection).Render(c.affirmative)
	noOption := optionStyle(!c.selection).Render(c.negative)
	return titleStyle(true).Render(c.title) + "\n\n" + yesOption + "  " + noOption
}

// Focus focuses the confirm field
func (c *Confirm) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// Blur removes focus
func (c *Confirm) Blur() {
	c.focused = false
}

// Focused returns whether the field is focused
func (c *Confirm) Focused() bool {
	return c.focused
}

// Key returns the field key
func (c *Confirm) Key() string {
	return c.key
}

// Value returns "yes" or "no"
func (c *Confirm) Value() string {
	if c.selection {
		return "yes"
	}
	return "no"
}

// Confirmed returns the current selection
func (c *Confirm) Confirmed() bool {
	return c.selection
}

// Answered reports whether y, n or enter has been pressed
func (c *Confirm) Answered() bool {
	return c.answered
}

// Reset restores the initial selection and clears the answer
func (c *Confirm) Reset() {
	c.selection = c.initial
	c.answered = false
}
