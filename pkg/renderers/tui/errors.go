package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrInvalidSchema is returned when the schema to fill fails validation.
	ErrInvalidSchema = errors.New("tui: invalid schema")
)
