package lead

import "errors"

// Lead-related errors
var (
	// Validation errors
	ErrInvalidLeadID     = errors.New("invalid lead ID")
	ErrUnknownField      = errors.New("unknown lead field")
	ErrInvalidJobType    = errors.New("invalid job type (must be Residential, Commercial or Unknown)")
	ErrInvalidLeadStatus = errors.New("invalid lead status")

	// Business logic errors
	ErrLeadNotFound = errors.New("lead not found")
)
