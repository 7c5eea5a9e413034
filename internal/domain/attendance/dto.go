package attendance

import (
	"strings"

	"github.com/cmlabs-hris/hris-attendance/internal/pkg/validator"
)

type DeclareExceptionRequest struct {
	EmployeeID string `json:"-"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Reason     string `json:"reason"`
}

func (r *DeclareExceptionRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Status, DeclarableStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(DeclarableStatuses, ", "),
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceResponse is the effective status of one (employee, date) key.
// Recorded reports whether a ledger row backs the status; Changed reports
// whether the request that produced the response wrote that row.
type AttendanceResponse struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     Status `json:"status"`
	Reason     string `json:"reason"`
	Recorded   bool   `json:"recorded"`
	Changed    bool   `json:"changed"`
}

type EmployeeDayStatus struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Status       Status `json:"status"`
	Reason       string `json:"reason,omitempty"`
}

type TodayStatusResponse struct {
	Date         string              `json:"date"`
	IsWorkingDay bool                `json:"is_working_day"`
	Employees    []EmployeeDayStatus `json:"employees"`
}

type ChangeMarkerResponse struct {
	Marker    int64   `json:"marker"`
	ChangedAt *string `json:"changed_at"`
}
