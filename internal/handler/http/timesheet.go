package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/timesheet"
	"github.com/cmlabs-hris/hris-attendance/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/jwt"
)

type TimesheetHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	SuggestProject(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// Submit handles POST /timesheets
func (h *timesheetHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	claims, err := jwt.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req timesheet.SubmitTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitTask decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = claims.EmployeeID

	result, err := h.timesheetService.RecordTaskSubmission(r.Context(), req)
	if err != nil {
		slog.Error("SubmitTask service error", "error", err, "employee_id", req.EmployeeID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task submitted successfully", result)
}

// SuggestProject handles POST /timesheets/suggest-project
func (h *timesheetHandlerImpl) SuggestProject(w http.ResponseWriter, r *http.Request) {
	var req timesheet.SuggestProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SuggestProject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.timesheetService.SuggestProject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByDate handles GET /timesheets?date=YYYY-MM-DD
func (h *timesheetHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	result, err := h.timesheetService.GetDailyTimesheet(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
