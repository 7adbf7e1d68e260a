package modelops

import (
	"errors"

	credentialservice "github.com/thenoetrevino/leadbook/internal/services/credential"
	"github.com/thenoetrevino/leadbook/internal/tui"
	"github.com/thenoetrevino/leadbook/internal/tui/forms"
)

// LoadAll fills the model from the stores on start-up
func LoadAll(m *tui.Model) {
	ReloadLeads(m)
	LoadNote(m)
	LoadCredential(m)
}

// ReloadLeads re-reads the lead list. The table cursor follows the selected lead.
func ReloadLeads(m *tui.Model) {
	ctx, cancel := m.DbContext()
	defer cancel()

	leads, err := m.App.LeadService.ListLeads(ctx)
	if err != nil {
		m.HandleDBError(err, "load leads")
		return
	}
	m.Table.SetLeads(leads)
}

// LoadNote reads the note of the selected calendar day into the editor
func LoadNote(m *tui.Model) {
	ctx, cancel := m.DbContext()
	defer cancel()

	text, err := m.App.CalendarService.GetNote(ctx, m.Calendar.Date())
	if err != nil {
		m.HandleDBError(err, "load note")
		text = ""
	}
	m.NoteEditor.SetValue(text)
}

// LoadCredential reads the saved Twilio pair, if any
func LoadCredential(m *tui.Model) {
	ctx, cancel := m.DbContext()
	defer cancel()

	cred, err := m.App.CredentialService.Load(ctx)
	if errors.Is(err, credentialservice.ErrNotSet) {
		m.Credential = nil
		return
	}
	if err != nil {
		m.HandleDBError(err, "load credentials")
		return
	}
	m.Credential = cred
	if f, ok := m.CredentialForm.Get("sid").(*forms.TextInput); ok {
		f.SetValue(cred.SID)
	}
}
