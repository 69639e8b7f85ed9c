package tui

import "errors"

var (
	// ErrAborted signals the respondent aborted the session (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoSections is returned when the survey has no sections to run.
	ErrNoSections = errors.New("tui: survey has no sections")
)
