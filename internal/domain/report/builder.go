package report

import (
	"fmt"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/validator"
)

// SkippedRecord is a ledger row left out of a report, with the reason.
type SkippedRecord struct {
	Record attendance.Record
	Reason string
}

// Build computes the monthly summary and matrix from the directory and the
// ledger rows. It is a pure function: rows that cannot be placed are returned
// as skipped instead of failing the report.
func Build(p Period, employees []employee.Employee, records []attendance.Record) ([]MonthlySummaryRow, []MatrixRow, []SkippedRecord) {
	summary := make([]MonthlySummaryRow, 0, len(employees))
	matrix := make([]MatrixRow, 0, len(employees))
	if len(employees) == 0 {
		return summary, matrix, nil
	}

	dates := p.Dates()
	workingDays := p.WorkingDays()

	index := make(map[string]int, len(employees))
	for i, emp := range employees {
		index[emp.ID] = i

		days := make([]DayCell, len(dates))
		for d, date := range dates {
			days[d] = DayCell{
				Date:    date.Format(validator.DateLayout),
				Weekday: date.Weekday().String(),
				Status:  attendance.DefaultStatus(date),
			}
		}

		summary = append(summary, MonthlySummaryRow{EmployeeID: emp.ID, EmployeeName: emp.Name})
		matrix = append(matrix, MatrixRow{EmployeeID: emp.ID, EmployeeName: emp.Name, Days: days})
	}

	var skipped []SkippedRecord
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		i, ok := index[rec.EmployeeID]
		switch {
		case !ok:
			skipped = append(skipped, SkippedRecord{Record: rec, Reason: "employee not in directory"})
			continue
		case !p.Contains(rec.Date):
			skipped = append(skipped, SkippedRecord{Record: rec, Reason: "date outside period"})
			continue
		case !rec.Status.IsStored():
			skipped = append(skipped, SkippedRecord{Record: rec, Reason: fmt.Sprintf("unexpected status %q", rec.Status)})
			continue
		}

		key := rec.EmployeeID + "|" + rec.Date.Format(validator.DateLayout)
		if _, dup := seen[key]; dup {
			skipped = append(skipped, SkippedRecord{Record: rec, Reason: "conflicting row for the same day"})
			continue
		}
		seen[key] = struct{}{}

		matrix[i].Days[rec.Date.Day()-1].Status = rec.Status

		row := &summary[i]
		switch rec.Status {
		case attendance.StatusPresent:
			row.Present++
		case attendance.StatusHalfDay:
			row.HalfDay++
		case attendance.StatusLeave:
			row.Leave++
		}
	}

	for i := range summary {
		row := &summary[i]
		row.TotalLogged = row.Present + row.HalfDay + row.Leave
		row.Absent = max(0, workingDays-row.TotalLogged)
	}

	return summary, matrix, skipped
}
