package modelops

import (
	"path/filepath"

	"github.com/thenoetrevino/leadbook/internal/config"
	"github.com/thenoetrevino/leadbook/internal/export"
	"github.com/thenoetrevino/leadbook/internal/models"
	credentialservice "github.com/thenoetrevino/leadbook/internal/services/credential"
	leadservice "github.com/thenoetrevino/leadbook/internal/services/lead"
	"github.com/thenoetrevino/leadbook/internal/tui"
)

// CreateLeadFromForm saves the Leads Input form as a new lead.
// On success the form is cleared and the job type goes back to the first choice.
func CreateLeadFromForm(m *tui.Model) (*models.Lead, bool) {
	v := m.LeadForm.Values()
	req := leadservice.CreateLeadRequest{
		FirstName:    v["first_name"],
		LastName:     v["last_name"],
		AddressLine1: v["address_line1"],
		AddressLine2: v["address_line2"],
		City:         v["city"],
		State:        v["state"],
		Zipcode:      v["zipcode"],
		Phone:        v["phone"],
		Email:        v["email"],
		Notes:        v["notes"],
		ReferredBy:   v["referred_by"],
		JobType:      v["job_type"],
	}

	ctx, cancel := m.DbContext()
	defer cancel()

	lead, err := m.App.LeadService.CreateLead(ctx, req)
	if err != nil {
		m.HandleDBError(err, "add lead")
		return nil, false
	}

	m.LeadForm.Reset()
	ReloadLeads(m)
	return lead, true
}

// UpdateSelectedField writes value into the selected cell of the leads table
func UpdateSelectedField(m *tui.Model, value string) bool {
	lead := m.Table.Selected()
	if lead == nil {
		return false
	}

	ctx, cancel := m.DbContext()
	defer cancel()

	if err := m.App.LeadService.UpdateLeadField(ctx, lead.ID, m.Table.Field(), value); err != nil {
		m.HandleDBError(err, "update lead")
		return false
	}
	ReloadLeads(m)
	return true
}

// CycleSelectedStatus moves the selected lead to the next status
func CycleSelectedStatus(m *tui.Model) (models.LeadStatus, bool) {
	lead := m.Table.Selected()
	if lead == nil {
		return "", false
	}
	next := lead.LeadStatus.Next()

	ctx, cancel := m.DbContext()
	defer cancel()

	if err := m.App.LeadService.UpdateLeadField(ctx, lead.ID, "lead_status", string(next)); err != nil {
		m.HandleDBError(err, "change status")
		return "", false
	}
	ReloadLeads(m)
	return next, true
}

// DeleteSelectedLead removes the selected lead
func DeleteSelectedLead(m *tui.Model) bool {
	lead := m.Table.Selected()
	if lead == nil {
		return false
	}

	ctx, cancel := m.DbContext()
	defer cancel()

	if err := m.App.LeadService.DeleteLead(ctx, lead.ID); err != nil {
		m.HandleDBError(err, "delete lead")
		return false
	}
	ReloadLeads(m)
	return true
}

// SaveNote stores the editor text for the selected calendar day
func SaveNote(m *tui.Model) bool {
	ctx, cancel := m.DbContext()
	defer cancel()

	text := m.NoteEditor.Value()
	if err := m.App.CalendarService.SaveNote(ctx, m.Calendar.Date(), text); err != nil {
		m.HandleDBError(err, "save note")
		return false
	}
	m.NoteEditor.SetValue(text)
	return true
}

// SaveCredential replaces the stored Twilio pair with the form values
func SaveCredential(m *tui.Model) bool {
	req := credentialservice.SaveRequest{
		SID:       m.CredentialForm.Value("sid"),
		AuthToken: m.CredentialForm.Value("auth_token"),
	}

	ctx, cancel := m.DbContext()
	defer cancel()

	if err := m.App.CredentialService.Save(ctx, req); err != nil {
		m.HandleDBError(err, "save credentials")
		return false
	}
	m.CredentialForm.Get("auth_token").Reset()
	LoadCredential(m)
	return true
}

// ExportLeads writes every lead to the export directory in format.
// It returns the file written and the number of leads.
func ExportLeads(m *tui.Model, format export.Format) (string, int, bool) {
	path := config.ExpandHome(filepath.Join(m.Config.Export.Dir, export.DefaultFileName(format, m.Now())))

	ctx, cancel := m.DbContext()
	defer cancel()

	n, err := m.App.Exporter.ExportFile(ctx, format, path)
	if err != nil {
		m.HandleDBError(err, "export")
		return "", 0, false
	}
	return path, n, true
}
