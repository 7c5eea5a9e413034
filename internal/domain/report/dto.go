package report

import (
	"github.com/cmlabs-hris/hris-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/validator"
)

// ========================================
// MONTHLY ATTENDANCE REPORT
// ========================================

type MonthlyAttendanceReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyAttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: ErrInvalidMonth.Error(),
		})
	}

	if r.Year < 1 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: ErrInvalidYear.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyAttendanceReport struct {
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	WorkingDays int    `json:"working_days"`
	GeneratedAt string `json:"generated_at"`

	Summary []MonthlySummaryRow `json:"summary"`
	Matrix  []MatrixRow         `json:"matrix"`
}

// MonthlySummaryRow counts one employee's ledger rows in the month. Absent is
// inferred: working days that produced no row at all.
type MonthlySummaryRow struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Present      int    `json:"present"`
	HalfDay      int    `json:"half_day"`
	Leave        int    `json:"leave"`
	TotalLogged  int    `json:"total_logged"`
	Absent       int    `json:"absent"`
}

type DayCell struct {
	Date    string            `json:"date"`
	Weekday string            `json:"weekday"`
	Status  attendance.Status `json:"status"`
}

// MatrixRow holds exactly one cell per calendar day of the month.
type MatrixRow struct {
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Days         []DayCell `json:"days"`
}
