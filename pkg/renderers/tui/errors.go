package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C) or declined to
	// keep the edits.
	ErrAborted = errors.New("tui: aborted")
	// ErrInvalidChoice is returned when a driver reports a selection outside
	// the offered options.
	ErrInvalidChoice = errors.New("tui: invalid choice")
)
