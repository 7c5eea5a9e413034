package timesheet

import (
	"strings"
	"testing"

	"github.com/cmlabs-hris/hris-attendance/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitTaskRequest_Validate(t *testing.T) {
	valid := SubmitTaskRequest{
		ProjectName:     "Payroll",
		TaskDescription: "Fix export",
		HoursWorked:     decimal.RequireFromString("1.5"),
		EntryDate:       "2024-04-01",
	}
	assert.NoError(t, valid.Validate())

	cases := map[string]func(r *SubmitTaskRequest){
		"project_name":     func(r *SubmitTaskRequest) { r.ProjectName = "  " },
		"task_description": func(r *SubmitTaskRequest) { r.TaskDescription = "" },
		"entry_date":       func(r *SubmitTaskRequest) { r.EntryDate = "yesterday" },
	}
	for field, mutate := range cases {
		req := valid
		mutate(&req)

		err := req.Validate()

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs, field)
		assert.Contains(t, verrs.ToMap(), field)
	}

	tooLong := map[string]func(r *SubmitTaskRequest){
		"project_name":     func(r *SubmitTaskRequest) { r.ProjectName = strings.Repeat("p", 256) },
		"task_description": func(r *SubmitTaskRequest) { r.TaskDescription = strings.Repeat("t", 2001) },
	}
	for field, mutate := range tooLong {
		req := valid
		mutate(&req)

		err := req.Validate()

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs, field)
		assert.Contains(t, verrs.ToMap(), field)
	}

	for _, hours := range []string{"0", "-2", "24.5", "0.001", "0.004", "1.006"} {
		req := valid
		req.HoursWorked = decimal.RequireFromString(hours)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, req.Validate(), &verrs, hours)
		assert.Contains(t, verrs.ToMap(), "hours_worked", hours)
	}

	for _, hours := range []string{"0.01", "1.25", "7.5", "24", "24.00", "1.010"} {
		req := valid
		req.HoursWorked = decimal.RequireFromString(hours)
		req.TaskDescription = strings.Repeat("t", 2000)
		assert.NoError(t, req.Validate(), hours)
	}
}

func TestSuggestProjectRequest_Validate(t *testing.T) {
	req := SuggestProjectRequest{TaskDescription: " "}
	assert.Error(t, req.Validate())

	req.TaskDescription = strings.Repeat("x", 2001)
	assert.Error(t, req.Validate())

	req.TaskDescription = "write unit tests"
	assert.NoError(t, req.Validate())
}
