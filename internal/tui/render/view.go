package render

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/leadbook/internal/capability"
	"github.com/thenoetrevino/leadbook/internal/tui"
	"github.com/thenoetrevino/leadbook/internal/tui/components"
	"github.com/thenoetrevino/leadbook/internal/tui/layers"
	"github.com/thenoetrevino/leadbook/internal/tui/notifications"
	"github.com/thenoetrevino/leadbook/internal/tui/state"
)

// tabBarLines is the height of the bordered tab row
const tabBarLines = 3

// View is the main view dispatcher that renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func View(m *tui.Model) tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	width, height := m.UiState.Width(), m.UiState.Height()
	bodyHeight := max(height-tabBarLines-1, 1)

	tabs := components.RenderTabs(state.TabNames(), int(m.UiState.ActiveTab()), width, inlineNotification(m))
	body := lipgloss.NewStyle().Width(width).Height(bodyHeight).MaxHeight(bodyHeight).Render(viewBody(m, width, bodyHeight))
	base := lipgloss.JoinVertical(lipgloss.Left, tabs, body, statusBar(m, width))

	view.Content = layers.Compose(base, viewModal(m), width, height)
	return view
}

// inlineNotification returns the newest notification for the tab bar, or ""
func inlineNotification(m *tui.Model) string {
	n, ok := m.NotificationState.Latest()
	if !ok {
		return ""
	}
	return notifications.RenderInline(n)
}

func viewBody(m *tui.Model, width, height int) string {
	switch tab := m.UiState.ActiveTab(); tab {
	case state.TabLeadsInput:
		return ViewLeadsInput(m, width)
	case state.TabLeadsTable:
		return ViewLeadsTable(m, width, height)
	case state.TabCalendar:
		return ViewCalendar(m, width)
	case state.TabIntegrations:
		return ViewIntegrations(m, width)
	default:
		return capability.RenderPage(tab.String(), width)
	}
}

// viewModal returns the dialog drawn over the current tab, or ""
func viewModal(m *tui.Model) string {
	switch m.UiState.Mode() {
	case state.EditCellMode:
		return ViewCellEditor(m)
	case state.DeleteConfirmMode:
		return ViewDeleteConfirm(m)
	case state.ExportMode:
		return ViewExportChoice(m)
	}
	return ""
}

func statusBar(m *tui.Model, width int) string {
	km := m.Config.KeyMappings
	props := components.StatusBarProps{Width: width}

	switch m.UiState.ActiveTab() {
	case state.TabLeadsInput:
		props.Left = fmt.Sprintf(" %s: add lead  tab: next field  esc: clear  %s/%s: tabs", km.SaveForm, km.NextTab, km.PrevTab)
	case state.TabLeadsTable:
		props.EditMode = m.Table.EditMode()
		props.Left = fmt.Sprintf(" %s: edit mode  %s: edit cell  %s: status  %s: delete  %s: export  %s: refresh",
			km.ToggleEdit, km.EditField, km.CycleStatus, km.DeleteLead, km.Export, km.Refresh)
		if n := len(m.Table.Leads()); n > 0 {
			props.Right = fmt.Sprintf("lead %d/%d ", m.Table.Row()+1, n)
		}
	case state.TabCalendar:
		if m.UiState.Mode() == state.NoteEditMode {
			props.Left = fmt.Sprintf(" %s: save note  esc: discard", km.SaveForm)
		} else {
			props.Left = fmt.Sprintf(" %s/%s: day  %s: today  enter: edit note", km.PrevDay, km.NextDay, km.Today)
		}
		props.Right = m.Calendar.Key() + " "
	case state.TabIntegrations:
		props.Left = fmt.Sprintf(" %s: save credentials  tab: next field  esc: reset", km.SaveForm)
	default:
		props.Left = fmt.Sprintf(" tab/%s: tabs  %s: quit", km.NextTab, km.Quit)
	}
	return components.RenderStatusBar(props)
}
