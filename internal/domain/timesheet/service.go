package timesheet

import "context"

type TimesheetService interface {
	// RecordTaskSubmission appends an entry and lets the attendance rule react to it.
	RecordTaskSubmission(ctx context.Context, req SubmitTaskRequest) (SubmitTaskResponse, error)

	GetDailyTimesheet(ctx context.Context, date string) (DailyTimesheetResponse, error)

	SuggestProject(ctx context.Context, req SuggestProjectRequest) (SuggestProjectResponse, error)
}
