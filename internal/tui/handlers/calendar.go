package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/leadbook/internal/tui"
	"github.com/thenoetrevino/leadbook/internal/tui/modelops"
	"github.com/thenoetrevino/leadbook/internal/tui/state"
)

// ============================================================================
// CALENDAR HANDLERS
// ============================================================================

// HandleCalendar handles keys on the Calendar tab while the note is not being edited.
func HandleCalendar(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	km := m.Config.KeyMappings

	switch msg.String() {
	case km.Quit:
		return tea.Quit
	case km.PrevDay, "left":
		m.Calendar.Shift(-1)
	case km.NextDay, "right":
		m.Calendar.Shift(1)
	case "{", "up":
		m.Calendar.Shift(-7)
	case "}", "down":
		m.Calendar.Shift(7)
	case km.Today:
		m.Calendar.SetDate(m.Now())
	case "enter", km.ToggleEdit:
		m.UiState.SetMode(state.NoteEditMode)
		return m.NoteEditor.Focus()
	default:
		return nil
	}

	modelops.LoadNote(m)
	return nil
}

// HandleNoteEdit handles keys while typing in the note editor.
// The save key stores the note; esc drops unsaved changes.
func HandleNoteEdit(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case m.Config.KeyMappings.SaveForm:
		if modelops.SaveNote(m) {
			m.NotificationState.Info("Note saved for " + m.Calendar.Key())
		}
		leaveNoteEdit(m)
		return nil
	case "esc":
		m.NoteEditor.Reset()
		leaveNoteEdit(m)
		return nil
	}

	_, cmd := m.NoteEditor.Update(msg)
	return cmd
}

func leaveNoteEdit(m *tui.Model) {
	m.NoteEditor.Blur()
	m.UiState.SetMode(state.NormalMode)
}
