package handlers

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/leadbook/internal/export"
	"github.com/thenoetrevino/leadbook/internal/tui"
	"github.com/thenoetrevino/leadbook/internal/tui/modelops"
	"github.com/thenoetrevino/leadbook/internal/tui/state"
)

// ============================================================================
// DIALOG HANDLERS
// ============================================================================

// HandleDeleteConfirm handles lead deletion confirmation.
func HandleDeleteConfirm(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "esc" {
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	m.DeleteConfirm.Update(msg)
	if !m.DeleteConfirm.Answered() {
		return nil
	}

	if m.DeleteConfirm.Confirmed() {
		id := m.Table.Selected().ID
		if modelops.DeleteSelectedLead(m) {
			m.NotificationState.Info(fmt.Sprintf("Lead #%d deleted", id))
		}
	}
	m.DeleteConfirm.Reset()
	m.UiState.SetMode(state.NormalMode)
	return nil
}

// HandleExportMode handles the export format picker.
func HandleExportMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.UiState.SetMode(state.NormalMode)
		return nil
	case "enter":
		m.UiState.SetMode(state.NormalMode)
		format, err := export.ParseFormat(m.ExportChoice.Value())
		if err != nil {
			m.HandleDBError(err, "export")
			return nil
		}
		if path, n, ok := modelops.ExportLeads(m, format); ok {
			m.NotificationState.Info(fmt.Sprintf("Exported %d leads to %s", n, path))
		}
		return nil
	}

	m.ExportChoice.Update(msg)
	return nil
}
