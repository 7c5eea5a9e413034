package timesheet

import (
	"context"
	"time"
)

type TimesheetRepository interface {
	Create(ctx context.Context, entry Entry) (Entry, error)

	// ListByDate returns the entries for one calendar date joined with the
	// employee name, ordered by submission time.
	ListByDate(ctx context.Context, date time.Time) ([]Entry, error)

	// ListProjectNames returns the distinct project names ever logged.
	ListProjectNames(ctx context.Context) ([]string, error)
}

// ProjectSuggester picks the label from candidateLabels that best describes
// taskText. Implementations are opaque classifiers.
type ProjectSuggester interface {
	Suggest(ctx context.Context, taskText string, candidateLabels []string) (string, error)
}
