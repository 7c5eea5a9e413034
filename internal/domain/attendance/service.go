package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic over the attendance ledger
type AttendanceService interface {
	// ApplySubmission runs the submission branch of the derivation rule. It
	// joins the transaction carried by ctx when there is one. The boolean is
	// false when an existing row was left untouched.
	ApplySubmission(ctx context.Context, employeeID string, date time.Time) (Record, bool, error)

	// DeclareException records an employee's Leave or Half-day declaration.
	DeclareException(ctx context.Context, req DeclareExceptionRequest) (AttendanceResponse, error)

	// GetEmployeeStatus returns the effective status of one employee on one date.
	GetEmployeeStatus(ctx context.Context, employeeID string, date string) (AttendanceResponse, error)

	// GetTodayStatus lists every employee's effective status for today.
	GetTodayStatus(ctx context.Context) (TodayStatusResponse, error)

	BumpChangeMarker(ctx context.Context) (int64, error)
	GetLastChangeMarker(ctx context.Context) (ChangeMarkerResponse, error)
}
