package handlers

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/leadbook/internal/tui"
	"github.com/thenoetrevino/leadbook/internal/tui/modelops"
)

// ============================================================================
// FORM TAB HANDLERS
// ============================================================================

// HandleLeadsInput handles keys on the Leads Input tab.
// The save key adds the lead; esc clears the form.
func HandleLeadsInput(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case m.Config.KeyMappings.SaveForm:
		lead, ok := modelops.CreateLeadFromForm(m)
		if ok {
			m.NotificationState.Info(fmt.Sprintf("Lead #%d added", lead.ID))
		}
		return m.LeadForm.FocusIndex(0)
	case "esc":
		m.NotificationState.Info("Form cleared")
		return m.LeadForm.Reset()
	}

	_, cmd := m.LeadForm.Update(msg)
	return cmd
}

// HandleIntegrations handles keys on the Integrations tab (Twilio credential form)
func HandleIntegrations(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case m.Config.KeyMappings.SaveForm:
		if modelops.SaveCredential(m) {
			m.NotificationState.Info("Twilio credentials saved")
		}
		return nil
	case "esc":
		m.CredentialForm.Get("auth_token").Reset()
		modelops.LoadCredential(m)
		return m.CredentialForm.FocusIndex(0)
	}

	_, cmd := m.CredentialForm.Update(msg)
	return cmd
}
