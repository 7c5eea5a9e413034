package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusHalfDay Status = "Half-day"
	StatusLeave   Status = "Leave"

	// Read-time labels. Neither is ever written to the ledger.
	StatusAbsent  Status = "Absent"
	StatusWeekend Status = "Weekend"
)

// ReasonWorkSubmitted is the reason stored when a task submission marks a day Present.
const ReasonWorkSubmitted = "Work Submitted"

// DeclarableStatuses lists the statuses an employee may declare for themselves.
var DeclarableStatuses = []string{string(StatusLeave), string(StatusHalfDay)}

// IsStored reports whether s may appear in a ledger row.
func (s Status) IsStored() bool {
	switch s {
	case StatusPresent, StatusHalfDay, StatusLeave:
		return true
	}
	return false
}

// IsDeclarable reports whether s may be declared as an attendance exception.
func (s Status) IsDeclarable() bool {
	return s == StatusLeave || s == StatusHalfDay
}

// Record is the single ledger row for an (employee, date) key.
type Record struct {
	EmployeeID string
	Date       time.Time
	Status     Status
	Reason     string
	UpdatedAt  time.Time
}

// DateOf truncates t to its calendar date, expressed as midnight UTC so that
// dates compare equal regardless of the zone they were read in.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsWorkingDay reports whether date falls on Monday through Friday.
func IsWorkingDay(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// DefaultStatus is the report-matrix label of a date that has no ledger row.
func DefaultStatus(date time.Time) Status {
	if IsWorkingDay(date) {
		return StatusAbsent
	}
	return StatusWeekend
}
