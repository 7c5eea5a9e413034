package timesheet

import (
	"github.com/cmlabs-hris/hris-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var maxHoursPerEntry = decimal.NewFromInt(24)

const (
	maxProjectNameLength     = 255
	maxTaskDescriptionLength = 2000
	// hoursScale matches the NUMERIC(5,2) column.
	hoursScale = 2
)

type SubmitTaskRequest struct {
	EmployeeID      string          `json:"-"`
	ProjectName     string          `json:"project_name"`
	TaskDescription string          `json:"task_description"`
	HoursWorked     decimal.Decimal `json:"hours_worked"`
	EntryDate       string          `json:"entry_date"`
}

func (r *SubmitTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectName) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_name",
			Message: "project_name is required",
		})
	}
	if len(r.ProjectName) > maxProjectNameLength {
		errs = append(errs, validator.ValidationError{
			Field:   "project_name",
			Message: "project_name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.TaskDescription) {
		errs = append(errs, validator.ValidationError{
			Field:   "task_description",
			Message: "task_description is required",
		})
	}
	if len(r.TaskDescription) > maxTaskDescriptionLength {
		errs = append(errs, validator.ValidationError{
			Field:   "task_description",
			Message: "task_description must not exceed 2000 characters",
		})
	}

	if !r.HoursWorked.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_worked",
			Message: "hours_worked must be greater than 0",
		})
	} else if r.HoursWorked.GreaterThan(maxHoursPerEntry) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_worked",
			Message: "hours_worked must not exceed 24",
		})
	} else if !r.HoursWorked.Equal(r.HoursWorked.Round(hoursScale)) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_worked",
			Message: "hours_worked must have at most 2 decimal places",
		})
	}

	if _, ok := validator.IsValidDate(r.EntryDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_date",
			Message: "entry_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SuggestProjectRequest struct {
	TaskDescription string   `json:"task_description"`
	Candidates      []string `json:"candidates"`
}

func (r *SuggestProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TaskDescription) {
		errs = append(errs, validator.ValidationError{
			Field:   "task_description",
			Message: "task_description is required",
		})
	}
	if len(r.TaskDescription) > maxTaskDescriptionLength {
		errs = append(errs, validator.ValidationError{
			Field:   "task_description",
			Message: "task_description must not exceed 2000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SuggestProjectResponse struct {
	ProjectName string `json:"project_name"`
}

type EntryResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name,omitempty"`
	ProjectName     string          `json:"project_name"`
	TaskDescription string          `json:"task_description"`
	HoursWorked     decimal.Decimal `json:"hours_worked"`
	EntryDate       string          `json:"entry_date"`
	SubmittedAt     string          `json:"submitted_at"`
}

type SubmitTaskResponse struct {
	Entry      EntryResponse                 `json:"entry"`
	Attendance attendance.AttendanceResponse `json:"attendance"`
}

type EmployeeHours struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	TotalHours   decimal.Decimal `json:"total_hours"`
}

type DailyTimesheetResponse struct {
	Date    string          `json:"date"`
	Entries []EntryResponse `json:"entries"`
	Totals  []EmployeeHours `json:"totals"`
}
