package lead

import (
	"strings"

	"github.com/thenoetrevino/leadbook/internal/database"
	"github.com/thenoetrevino/leadbook/internal/models"
)

// Fields lists the editable lead fields in table order
var Fields = []string{
	"lead_status",
	"first_name",
	"last_name",
	"address_line1",
	"address_line2",
	"city",
	"state",
	"zipcode",
	"phone",
	"email",
	"notes",
	"job_type",
	"referred_by",
}

// FieldLabels maps each field to the column header shown to users
var FieldLabels = map[string]string{
	"lead_status":   "Lead Status",
	"first_name":    "First Name",
	"last_name":     "Last Name",
	"address_line1": "Address Line 1",
	"address_line2": "Address Line 2",
	"city":          "City",
	"state":         "State",
	"zipcode":       "Zipcode",
	"phone":         "Phone",
	"email":         "Email",
	"notes":         "Notes",
	"job_type":      "Job Type",
	"referred_by":   "Referred By",
}

var fieldAliases = map[string]string{
	"address1":       "address_line1",
	"address2":       "address_line2",
	"address_line_1": "address_line1",
	"address_line_2": "address_line2",
	"zip":            "zipcode",
	"zip_code":       "zipcode",
	"phone_number":   "phone",
	"status":         "lead_status",
	"type":           "job_type",
}

// NormalizeField resolves a field name given as a column name, a header label
// ("Phone Number", "Lead Status") or a short alias to its column name.
// The result is checked against the storage allow-list.
func NormalizeField(name string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	if alias, ok := fieldAliases[key]; ok {
		key = alias
	}
	if !database.LeadColumns[key] {
		return "", ErrUnknownField
	}
	return key, nil
}

// FieldValue returns the stored value of one field of a lead, by column name
func FieldValue(l *models.Lead, field string) string {
	switch field {
	case "first_name":
		return l.FirstName
	case "last_name":
		return l.LastName
	case "address_line1":
		return l.AddressLine1
	case "address_line2":
		return l.AddressLine2
	case "city":
		return l.City
	case "state":
		return l.State
	case "zipcode":
		return l.Zipcode
	case "phone":
		return l.Phone
	case "email":
		return l.Email
	case "notes":
		return l.Notes
	case "referred_by":
		return l.ReferredBy
	case "job_type":
		return string(l.JobType)
	case "lead_status":
		return string(l.LeadStatus)
	}
	return ""
}
