package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/thenoetrevino/leadbook/internal/app"
	"github.com/thenoetrevino/leadbook/internal/config"
	"github.com/thenoetrevino/leadbook/internal/export"
	"github.com/thenoetrevino/leadbook/internal/models"
	leadservice "github.com/thenoetrevino/leadbook/internal/services/lead"
	"github.com/thenoetrevino/leadbook/internal/tui/forms"
	"github.com/thenoetrevino/leadbook/internal/tui/state"
)

// dbTimeout bounds every store call made from the TUI
const dbTimeout = 5 * time.Second

// noteCharLimit caps the calendar note editor
const noteCharLimit = 10000

// Lead form field keys, in display order
var leadFormFields = []struct {
	key, title, placeholder string
}{
	{"first_name", "First Name", "Jane"},
	{"last_name", "Last Name", "Doe"},
	{"address_line1", "Address Line 1", "12 Main St"},
	{"address_line2", "Address Line 2", "Apt 4"},
	{"city", "City", ""},
	{"state", "State", ""},
	{"zipcode", "Zipcode", ""},
	{"phone", "Phone", ""},
	{"email", "Email", ""},
	{"notes", "Notes", ""},
	{"referred_by", "Referred By", ""},
}

// JobTypeOptions are the choices of the input form, the first one is the default
var JobTypeOptions = stringsOf(models.JobTypes)

// StatusOptions are the choices of the lead_status cell editor
var StatusOptions = stringsOf(models.LeadStatuses)

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// Model represents the application state for the TUI.
// Handlers live in tui/handlers, rendering in tui/render.
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config
	Now    func() time.Time

	UiState           *state.UIState
	Table             *state.TableState
	Calendar          *state.CalendarState
	NotificationState *state.NotificationState

	// LeadForm is the Leads Input tab
	LeadForm *forms.Form

	// CellEditor edits one cell of the leads table while in EditCellMode
	CellEditor *forms.Form

	DeleteConfirm *forms.Confirm
	ExportChoice  *forms.Select

	// NoteEditor holds the note of the selected calendar day
	NoteEditor *forms.TextArea

	// CredentialForm is the Twilio section of the Integrations tab
	CredentialForm *forms.Form
	Credential     *models.TwilioCredential
}

// InitialModel creates the TUI model over the given App.
// Data is loaded by Init.
func InitialModel(ctx context.Context, a *app.App) Model {
	cfg := a.Config()
	now := time.Now

	return Model{
		Ctx:               ctx,
		App:               a,
		Config:            cfg,
		Now:               now,
		UiState:           state.NewUIState(),
		Table:             state.NewTableState(),
		Calendar:          state.NewCalendarState(now()),
		NotificationState: state.NewNotificationState(),
		LeadForm:          NewLeadForm(),
		DeleteConfirm:     forms.NewConfirm("delete", "Delete this lead?", "Yes", "No", false),
		ExportChoice:      NewExportChoice(),
		NoteEditor:        forms.NewTextArea("note", "Note", "Nothing planned.", noteCharLimit, ""),
		CredentialForm:    NewCredentialForm(),
	}
}

// NewLeadForm builds the Leads Input form
func NewLeadForm() *forms.Form {
	fields := make([]forms.Field, 0, len(leadFormFields)+1)
	for _, f := range leadFormFields {
		fields = append(fields, forms.NewTextInput(f.key, f.title, f.placeholder, ""))
	}
	fields = append(fields, forms.NewSelect("job_type", "Job Type", JobTypeOptions, JobTypeOptions[0]))
	form := forms.NewForm(fields...)
	form.Init()
	return form
}

// NewCredentialForm builds the Twilio credential form
func NewCredentialForm() *forms.Form {
	form := forms.NewForm(
		forms.NewTextInput("sid", "Account SID", "AC...", ""),
		forms.NewTextInput("auth_token", "Auth Token", "", "").Password(),
	)
	form.Init()
	return form
}

// NewExportChoice builds the export format picker
func NewExportChoice() *forms.Select {
	s := forms.NewSelect("format", "Export format", stringsOf(export.Formats), string(export.FormatCSV))
	s.Focus()
	return s
}

// NewCellEditor builds a one-field form for the given lead column.
// Enum columns get a select, everything else a text input.
func NewCellEditor(l *models.Lead, field string) *forms.Form {
	title := leadservice.FieldLabels[field]
	value := leadservice.FieldValue(l, field)

	var f forms.Field
	switch field {
	case "job_type":
		f = forms.NewSelect(field, title, JobTypeOptions, value)
	case "lead_status":
		f = forms.NewSelect(field, title, StatusOptions, value)
	default:
		f = forms.NewTextInput(field, title, "", value)
	}
	form := forms.NewForm(f)
	form.Init()
	return form
}

// DbContext returns a context for one store call
func (m *Model) DbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, dbTimeout)
}

// HandleDBError logs err and shows it in the tab bar
func (m *Model) HandleDBError(err error, operation string) {
	slog.Error("TUI operation failed", "operation", operation, "error", err)

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		m.NotificationState.Error(operation + ": timed out")
	case errors.Is(err, context.Canceled):
		m.NotificationState.Warn(operation + ": cancelled")
	default:
		m.NotificationState.Error(operation + ": " + err.Error())
	}
}

// FormActive reports whether keys on the active tab go to a text field
func (m *Model) FormActive() bool {
	switch m.UiState.ActiveTab() {
	case state.TabLeadsInput, state.TabIntegrations:
		return true
	case state.TabCalendar:
		return m.UiState.Mode() == state.NoteEditMode
	}
	return m.UiState.Mode() == state.EditCellMode
}
