package models

import "time"

// CalendarDateLayout is the key format used for calendar notes
const CalendarDateLayout = "2006-01-02"

// CalendarNote is the free-text note attached to one calendar date
type CalendarNote struct {
	Date  string `db:"date" json:"date"` // YYYY-MM-DD
	Notes string `db:"notes" json:"notes"`
}

// CalendarKey formats t as a calendar note key
func CalendarKey(t time.Time) string {
	return t.Format(CalendarDateLayout)
}
