package state

import (
	"time"

	"github.com/thenoetrevino/leadbook/internal/models"
)

// CalendarState tracks the day shown on the Calendar tab
type CalendarState struct {
	date time.Time
}

// NewCalendarState starts on the day containing now
func NewCalendarState(now time.Time) *CalendarState {
	return &CalendarState{date: day(now)}
}

// Date returns the selected day at midnight local time
func (s *CalendarState) Date() time.Time {
	return s.date
}

// Key returns the selected day as YYYY-MM-DD
func (s *CalendarState) Key() string {
	return models.CalendarKey(s.date)
}

// Shift moves the selected day by days
func (s *CalendarState) Shift(days int) {
	s.date = s.date.AddDate(0, 0, days)
}

// SetDate selects the day containing t
func (s *CalendarState) SetDate(t time.Time) {
	s.date = day(t)
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
