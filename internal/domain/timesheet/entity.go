package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is an append-only task-time log line. Once written it is never
// updated or deleted.
type Entry struct {
	ID              string
	EmployeeID      string
	ProjectName     string
	TaskDescription string
	HoursWorked     decimal.Decimal
	EntryDate       time.Time
	SubmittedAt     time.Time

	// DTO
	EmployeeName *string
}
