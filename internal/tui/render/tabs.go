package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/leadbook/internal/capability"
	"github.com/thenoetrevino/leadbook/internal/models"
	"github.com/thenoetrevino/leadbook/internal/tui"
	"github.com/thenoetrevino/leadbook/internal/tui/components"
	"github.com/thenoetrevino/leadbook/internal/tui/state"
)

// ViewLeadsInput renders the lead input form
func ViewLeadsInput(m *tui.Model, width int) string {
	content := components.TitleStyle.Render("New Lead") + "\n\n" + m.LeadForm.View()
	return components.FormBoxStyle.Width(min(width-2, 80)).Render(strings.TrimRight(content, "\n"))
}

// ViewLeadsTable renders the lead table with the selected lead's detail underneath
func ViewLeadsTable(m *tui.Model, width, height int) string {
	detail := components.RenderLeadDetail(m.Table.Selected(), width)
	detailHeight := 0
	if detail != "" {
		detailHeight = lipgloss.Height(detail) + 1
	}

	table := components.RenderLeadTable(components.LeadTableProps{
		Leads:    m.Table.Leads(),
		Row:      m.Table.Row(),
		Col:      m.Table.Col(),
		Width:    width,
		Height:   max(height-detailHeight, 3),
		EditMode: m.Table.EditMode(),
	})
	if detail == "" {
		return table
	}
	return lipgloss.JoinVertical(lipgloss.Left, table, "", detail)
}

// ViewCalendar renders the selected day and its note
func ViewCalendar(m *tui.Model, width int) string {
	date := m.Calendar.Date()
	header := components.TitleStyle.Render(date.Format("Monday, January 2 2006"))
	if models.CalendarKey(m.Now()) == m.Calendar.Key() {
		header += " " + components.SubtleStyle.Render("(today)")
	}

	var note string
	if m.UiState.Mode() == state.NoteEditMode {
		note = m.NoteEditor.View()
	} else if text := m.NoteEditor.Value(); text != "" {
		note = text
	} else {
		note = components.SubtleStyle.Render("No note for this day.")
	}

	links := capability.Group(state.TabCalendar.String())
	var b strings.Builder
	for _, c := range links {
		fmt.Fprintf(&b, "%s  ", components.SubtleStyle.Render(c.Message()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", note, "", b.String())
}

// ViewIntegrations renders the Twilio credential form and the remaining connectors
func ViewIntegrations(m *tui.Model, width int) string {
	status := components.SubtleStyle.Render("No Twilio credentials saved.")
	if m.Credential != nil {
		status = components.LabelStyle.Render("Saved: ") + m.Credential.SID + "  " + m.Credential.MaskedToken()
	}
	form := components.FormBoxStyle.Width(min(width-2, 70)).Render(
		components.TitleStyle.Render("Twilio") + "\n" + status + "\n\n" + strings.TrimRight(m.CredentialForm.View(), "\n"),
	)

	var others []string
	for _, c := range capability.Group(state.TabIntegrations.String()) {
		others = append(others, components.SubtleStyle.Render(c.Message()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{form, ""}, others...)...)
}
