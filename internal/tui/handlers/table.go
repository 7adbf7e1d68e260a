package handlers

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	leadservice "github.com/thenoetrevino/leadbook/internal/services/lead"
	"github.com/thenoetrevino/leadbook/internal/tui"
	"github.com/thenoetrevino/leadbook/internal/tui/modelops"
	"github.com/thenoetrevino/leadbook/internal/tui/state"
)

// ============================================================================
// LEADS TABLE HANDLERS
// ============================================================================

// HandleLeadsTable handles keys on the Leads Table tab in NormalMode.
func HandleLeadsTable(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	km := m.Config.KeyMappings

	switch msg.String() {
	case km.Quit:
		return tea.Quit
	case km.NextRow, "down":
		m.Table.MoveRow(1)
	case km.PrevRow, "up":
		m.Table.MoveRow(-1)
	case km.NextColumn, "right":
		m.Table.MoveCol(1)
	case km.PrevColumn, "left":
		m.Table.MoveCol(-1)
	case "g", "home":
		m.Table.MoveRow(-len(m.Table.Leads()))
	case "G", "end":
		m.Table.MoveRow(len(m.Table.Leads()))
	case km.ToggleEdit:
		return handleToggleEdit(m)
	case km.EditField:
		return handleEditField(m)
	case km.CycleStatus:
		return handleCycleStatus(m)
	case km.DeleteLead:
		return handleDeleteLead(m)
	case km.Export:
		m.ExportChoice = tui.NewExportChoice()
		m.UiState.SetMode(state.ExportMode)
	case km.Refresh:
		modelops.ReloadLeads(m)
		m.NotificationState.Info(fmt.Sprintf("%d leads", len(m.Table.Leads())))
	}
	return nil
}

func handleToggleEdit(m *tui.Model) tea.Cmd {
	if m.Table.ToggleEditMode() {
		m.NotificationState.Info("Edit mode on")
	} else {
		m.NotificationState.Info("Edit mode off")
	}
	return nil
}

// requireEditMode warns and reports false while the table is read-only
func requireEditMode(m *tui.Model) bool {
	if m.Table.EditMode() {
		return true
	}
	m.NotificationState.Warn(fmt.Sprintf("Table is read-only, press %s to edit", m.Config.KeyMappings.ToggleEdit))
	return false
}

func handleEditField(m *tui.Model) tea.Cmd {
	lead := m.Table.Selected()
	if lead == nil || !requireEditMode(m) {
		return nil
	}
	m.CellEditor = tui.NewCellEditor(lead, m.Table.Field())
	m.UiState.SetMode(state.EditCellMode)
	return m.CellEditor.FocusIndex(0)
}

func handleCycleStatus(m *tui.Model) tea.Cmd {
	if m.Table.Selected() == nil || !requireEditMode(m) {
		return nil
	}
	if next, ok := modelops.CycleSelectedStatus(m); ok {
		m.NotificationState.Info("Status: " + string(next))
	}
	return nil
}

func handleDeleteLead(m *tui.Model) tea.Cmd {
	if m.Table.Selected() == nil {
		return nil
	}
	m.DeleteConfirm.Reset()
	m.DeleteConfirm.Focus()
	m.UiState.SetMode(state.DeleteConfirmMode)
	return nil
}

// HandleEditCell handles keys while one cell is being edited.
// enter or the save key writes the value; esc cancels.
func HandleEditCell(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		closeCellEditor(m)
		return nil
	case "enter", m.Config.KeyMappings.SaveForm:
		field := m.Table.Field()
		if modelops.UpdateSelectedField(m, m.CellEditor.Value(field)) {
			m.NotificationState.Info(leadservice.FieldLabels[field] + " updated")
		}
		closeCellEditor(m)
		return nil
	}

	_, cmd := m.CellEditor.Update(msg)
	return cmd
}

func closeCellEditor(m *tui.Model) {
	m.CellEditor = nil
	m.UiState.SetMode(state.NormalMode)
}
