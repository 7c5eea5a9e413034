package timesheet

import "errors"

var (
	ErrNoSuggestion = errors.New("no project suggestion available")
)
