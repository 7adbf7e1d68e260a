package cli

import (
	"errors"

	"github.com/thenoetrevino/leadbook/internal/capability"
	"github.com/thenoetrevino/leadbook/internal/export"
	"github.com/thenoetrevino/leadbook/internal/services/calendar"
	"github.com/thenoetrevino/leadbook/internal/services/credential"
	"github.com/thenoetrevino/leadbook/internal/services/lead"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or a destructive command run without confirmation.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Lead not found, no saved credentials.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Unknown field names, invalid job type or status values,
	// malformed dates, unknown export formats.
	ExitValidation = 5
)

// UsageError marks an error caused by how the command was invoked
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// ExitCode maps an error returned by a command to its exit code
func ExitCode(err error) int {
	var usage *UsageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usage):
		return ExitUsage
	case errors.Is(err, lead.ErrLeadNotFound),
		errors.Is(err, credential.ErrNotSet):
		return ExitNotFound
	case errors.Is(err, lead.ErrInvalidLeadID),
		errors.Is(err, lead.ErrUnknownField),
		errors.Is(err, lead.ErrInvalidJobType),
		errors.Is(err, lead.ErrInvalidLeadStatus),
		errors.Is(err, calendar.ErrInvalidDate),
		errors.Is(err, calendar.ErrInvalidRange),
		errors.Is(err, credential.ErrEmptySID),
		errors.Is(err, credential.ErrEmptyToken),
		errors.Is(err, export.ErrUnknownFormat):
		return ExitValidation
	}
	return ExitError
}

// ErrorCode is the machine-readable code reported in JSON error output
func ErrorCode(err error) string {
	if errors.Is(err, capability.ErrNotImplemented) {
		return "NOT_IMPLEMENTED"
	}
	switch ExitCode(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitValidation:
		return "VALIDATION_ERROR"
	}
	return "ERROR"
}
