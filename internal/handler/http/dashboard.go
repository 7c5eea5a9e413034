package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetChangeMarker returns the last data change marker. Dashboards poll it
	// and reload only when it moves.
	GetChangeMarker(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewDashboardHandler(attendanceService attendance.AttendanceService) DashboardHandler {
	return &dashboardHandlerImpl{attendanceService: attendanceService}
}

// GetChangeMarker handles GET /dashboard/marker
func (h *dashboardHandlerImpl) GetChangeMarker(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetLastChangeMarker(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
