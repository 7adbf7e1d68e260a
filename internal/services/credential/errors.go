package credential

import "errors"

// Credential-related errors
var (
	ErrEmptySID   = errors.New("account SID cannot be empty")
	ErrEmptyToken = errors.New("auth token cannot be empty")
	ErrNotSet     = errors.New("no twilio credentials saved")
)
