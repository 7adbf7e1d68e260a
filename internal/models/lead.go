package models

import "strings"

// Lead represents one contractor sales lead
// Name and address are stored decomposed; see DisplayName and DisplayAddress
// for the composed forms used by exports and the table view
type Lead struct {
	ID           int        `db:"id" json:"id"`
	FirstName    string     `db:"first_name" json:"first_name"`
	LastName     string     `db:"last_name" json:"last_name"`
	AddressLine1 string     `db:"address_line1" json:"address_line1"`
	AddressLine2 string     `db:"address_line2" json:"address_line2"`
	City         string     `db:"city" json:"city"`
	State        string     `db:"state" json:"state"`
	Zipcode      string     `db:"zipcode" json:"zipcode"`
	Phone        string     `db:"phone" json:"phone"`
	Email        string     `db:"email" json:"email"`
	Notes        string     `db:"notes" json:"notes"`
	ReferredBy   string     `db:"referred_by" json:"referred_by"`
	JobType      JobType    `db:"job_type" json:"job_type" validate:"oneof=Residential Commercial Unknown"`
	LeadStatus   LeadStatus `db:"lead_status" json:"lead_status" validate:"oneof='In System' 'Good Lead' 'Contact Later' 'Bad Lead' 'Passed Along' Closed"`
}

// DisplayName joins first and last name with a single space, skipping empty parts
func (l *Lead) DisplayName() string {
	return joinNonEmpty(" ", l.FirstName, l.LastName)
}

// DisplayAddress composes the address fields as
// "line1, line2, city, state zipcode" with empty parts dropped
func (l *Lead) DisplayAddress() string {
	return joinNonEmpty(", ",
		l.AddressLine1,
		l.AddressLine2,
		l.City,
		joinNonEmpty(" ", l.State, l.Zipcode),
	)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
