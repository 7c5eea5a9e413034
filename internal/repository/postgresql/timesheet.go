package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/timesheet"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/database"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

// Create implements timesheet.TimesheetRepository.
func (t *timesheetRepositoryImpl) Create(ctx context.Context, entry timesheet.Entry) (timesheet.Entry, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO timesheet_entries (
			id, employee_id, project_name, task_description, hours_worked, entry_date, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, query,
		entry.ID,
		entry.EmployeeID,
		entry.ProjectName,
		entry.TaskDescription,
		entry.HoursWorked,
		entry.EntryDate,
		entry.SubmittedAt,
	)
	if err != nil {
		return timesheet.Entry{}, fmt.Errorf("failed to create timesheet entry: %w", err)
	}

	return entry, nil
}

// ListByDate implements timesheet.TimesheetRepository.
func (t *timesheetRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]timesheet.Entry, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT
			t.id, t.employee_id, t.project_name, t.task_description, t.hours_worked,
			t.entry_date, t.submitted_at,
			e.name AS employee_name
		FROM timesheet_entries t
		LEFT JOIN employees e ON e.employee_id = t.employee_id
		WHERE t.entry_date = $1
		ORDER BY t.submitted_at, t.id
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheet entries: %w", err)
	}
	defer rows.Close()

	entries := make([]timesheet.Entry, 0)
	for rows.Next() {
		var entry timesheet.Entry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.ProjectName, &entry.TaskDescription, &entry.HoursWorked,
			&entry.EntryDate, &entry.SubmittedAt,
			&entry.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate timesheet entries: %w", err)
	}

	return entries, nil
}

// ListProjectNames implements timesheet.TimesheetRepository.
func (t *timesheetRepositoryImpl) ListProjectNames(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, t.db)

	rows, err := q.Query(ctx, `SELECT DISTINCT project_name FROM timesheet_entries ORDER BY project_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list project names: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan project name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate project names: %w", err)
	}

	return names, nil
}
