package calendar

import "errors"

// Calendar-related errors
var (
	ErrInvalidDate  = errors.New("invalid date (expected YYYY-MM-DD)")
	ErrInvalidRange = errors.New("invalid date range (from is after to)")
)
