package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	// GenerateMonthlyAttendanceReport builds the summary and the day-by-day
	// matrix for every employee. It never mutates state.
	GenerateMonthlyAttendanceReport(ctx context.Context, req MonthlyAttendanceReportRequest) (MonthlyAttendanceReport, error)
}
