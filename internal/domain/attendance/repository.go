package attendance

import (
	"context"
	"time"
)

// AttendanceRepository is the ledger: at most one Record per (employee, date).
type AttendanceRepository interface {
	// LockKey serializes writers of the same (employee, date) key until the
	// surrounding transaction ends.
	LockKey(ctx context.Context, employeeID string, date time.Time) error

	// GetByEmployeeAndDate returns nil when no row exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// Upsert inserts the record or replaces the row with the same key.
	Upsert(ctx context.Context, record Record) (Record, error)

	// ListByDateRange returns every row with start <= date <= end.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]Record, error)
}

// ChangeMarkerRepository owns the "last data change" marker polled by live
// dashboards. The marker is a strictly increasing unix-millisecond value.
type ChangeMarkerRepository interface {
	// Bump advances the marker to max(at, current+1) and returns the new value.
	Bump(ctx context.Context, at time.Time) (int64, error)
	// Get returns the current marker, 0 if it was never bumped.
	Get(ctx context.Context) (int64, error)
}
