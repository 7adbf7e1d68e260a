package render

import (
	"fmt"

	"github.com/thenoetrevino/leadbook/internal/tui"
	"github.com/thenoetrevino/leadbook/internal/tui/components"
	"github.com/thenoetrevino/leadbook/internal/tui/layers"
)

// ViewCellEditor renders the dialog for editing one cell
func ViewCellEditor(m *tui.Model) string {
	if m.CellEditor == nil {
		return ""
	}
	lead := m.Table.Selected()
	title := "Edit"
	if lead != nil {
		title = fmt.Sprintf("Edit lead #%d", lead.ID)
	}
	content := components.TitleStyle.Render(title) + "\n\n" +
		m.CellEditor.View() +
		components.SubtleStyle.Render(components.FooterEditCell)
	return components.EditInputBoxStyle.Width(layers.ModalWidth(m.UiState.Width())).Render(content)
}

// ViewDeleteConfirm renders the delete confirmation dialog
func ViewDeleteConfirm(m *tui.Model) string {
	lead := m.Table.Selected()
	if lead == nil {
		return ""
	}
	name := lead.DisplayName()
	if name == "" {
		name = "(no name)"
	}
	content := fmt.Sprintf("Lead #%d: %s\n\n", lead.ID, name) +
		m.DeleteConfirm.View() + "\n\n" +
		components.SubtleStyle.Render(components.FooterConfirm)
	return components.DeleteConfirmBoxStyle.Width(layers.ModalWidth(m.UiState.Width())).Render(content)
}

// ViewExportChoice renders the export format picker
func ViewExportChoice(m *tui.Model) string {
	content := fmt.Sprintf("%d leads to %s\n\n", len(m.Table.Leads()), m.Config.Export.Dir) +
		m.ExportChoice.View() + "\n\n" +
		components.SubtleStyle.Render(components.FooterExport)
	return components.DialogBoxStyle.Width(layers.ModalWidth(m.UiState.Width())).Render(content)
}
