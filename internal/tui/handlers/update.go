package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/leadbook/internal/tui"
	"github.com/thenoetrevino/leadbook/internal/tui/modelops"
	"github.com/thenoetrevino/leadbook/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func Update(m *tui.Model, msg tea.Msg) tea.Cmd {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyMsg(m, msg)

	case tea.WindowSizeMsg:
		return HandleWindowResize(m, msg)
	}

	// Blink and other field messages go to whatever is focused
	return forwardToActiveForm(m, msg)
}

// HandleKeyMsg dispatches key messages to the appropriate mode or tab handler.
func HandleKeyMsg(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	m.NotificationState.Clear()

	switch m.UiState.Mode() {
	case state.EditCellMode:
		return HandleEditCell(m, msg)
	case state.DeleteConfirmMode:
		return HandleDeleteConfirm(m, msg)
	case state.ExportMode:
		return HandleExportMode(m, msg)
	case state.NoteEditMode:
		return HandleNoteEdit(m, msg)
	}

	if cmd, ok := handleTabSwitch(m, msg); ok {
		return cmd
	}

	switch m.UiState.ActiveTab() {
	case state.TabLeadsInput:
		return HandleLeadsInput(m, msg)
	case state.TabLeadsTable:
		return HandleLeadsTable(m, msg)
	case state.TabCalendar:
		return HandleCalendar(m, msg)
	case state.TabIntegrations:
		return HandleIntegrations(m, msg)
	}

	if msg.String() == m.Config.KeyMappings.Quit {
		return tea.Quit
	}
	return nil
}

// handleTabSwitch moves between tabs. tab and shift+tab also switch
// when the active tab has no form to move focus in.
func handleTabSwitch(m *tui.Model, msg tea.KeyPressMsg) (tea.Cmd, bool) {
	km := m.Config.KeyMappings
	key := msg.String()

	switch {
	case key == km.NextTab, key == "tab" && !m.FormActive():
		m.UiState.NextTab()
	case key == km.PrevTab, key == "shift+tab" && !m.FormActive():
		m.UiState.PrevTab()
	default:
		return nil, false
	}
	return onTabChange(m), true
}

// onTabChange refreshes the data shown by the new tab and focuses its form
func onTabChange(m *tui.Model) tea.Cmd {
	switch m.UiState.ActiveTab() {
	case state.TabLeadsInput:
		return m.LeadForm.FocusIndex(m.LeadForm.FocusedIndex())
	case state.TabLeadsTable:
		modelops.ReloadLeads(m)
	case state.TabCalendar:
		modelops.LoadNote(m)
	case state.TabIntegrations:
		return m.CredentialForm.FocusIndex(m.CredentialForm.FocusedIndex())
	}
	return nil
}

// HandleWindowResize handles terminal resize events.
func HandleWindowResize(m *tui.Model, msg tea.WindowSizeMsg) tea.Cmd {
	m.UiState.SetWidth(msg.Width)
	m.UiState.SetHeight(msg.Height)
	m.NoteEditor.SetSize(max(msg.Width-4, 20), max(msg.Height-12, 3))
	return nil
}

func forwardToActiveForm(m *tui.Model, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.UiState.Mode() == state.EditCellMode && m.CellEditor != nil:
		_, cmd = m.CellEditor.Update(msg)
	case m.UiState.Mode() == state.NoteEditMode:
		_, cmd = m.NoteEditor.Update(msg)
	case m.UiState.ActiveTab() == state.TabLeadsInput:
		_, cmd = m.LeadForm.Update(msg)
	case m.UiState.ActiveTab() == state.TabIntegrations:
		_, cmd = m.CredentialForm.Update(msg)
	}
	return cmd
}
