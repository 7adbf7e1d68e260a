package models

import "errors"

// Storage-level errors shared by repositories and services
var (
	// ErrNotFound indicates the requested row does not exist
	ErrNotFound = errors.New("record not found")
)
