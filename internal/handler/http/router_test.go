package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance/internal/domain/auth"
	"github.com/cmlabs-hris/hris-attendance/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance/internal/domain/report"
	"github.com/cmlabs-hris/hris-attendance/internal/domain/timesheet"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

type fakeAuthService struct{}

func (fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if req.Password != "password123" {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	return auth.TokenResponse{AccessToken: "token", Role: auth.RoleEmployee, EmployeeID: req.EmployeeID}, nil
}

func (fakeAuthService) AdminLogin(ctx context.Context, req auth.AdminLoginRequest) (auth.TokenResponse, error) {
	return auth.TokenResponse{AccessToken: "token", Role: auth.RoleAdmin}, nil
}

type fakeEmployeeService struct {
	employee.EmployeeService
}

func (fakeEmployeeService) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return []employee.EmployeeResponse{{EmployeeID: "E1", Name: "Asha"}}, nil
}

func (fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if req.EmployeeID == "E1" {
		return employee.EmployeeResponse{}, employee.ErrEmployeeIDExists
	}
	return employee.EmployeeResponse{EmployeeID: req.EmployeeID, Name: req.Name}, nil
}

type fakeTimesheetService struct {
	timesheet.TimesheetService
	lastSubmit timesheet.SubmitTaskRequest
}

func (f *fakeTimesheetService) RecordTaskSubmission(ctx context.Context, req timesheet.SubmitTaskRequest) (timesheet.SubmitTaskResponse, error) {
	f.lastSubmit = req
	if err := req.Validate(); err != nil {
		return timesheet.SubmitTaskResponse{}, err
	}
	return timesheet.SubmitTaskResponse{
		Entry:      timesheet.EntryResponse{EmployeeID: req.EmployeeID, ProjectName: req.ProjectName},
		Attendance: attendance.AttendanceResponse{EmployeeID: req.EmployeeID, Status: attendance.StatusPresent},
	}, nil
}

func (f *fakeTimesheetService) GetDailyTimesheet(ctx context.Context, date string) (timesheet.DailyTimesheetResponse, error) {
	return timesheet.DailyTimesheetResponse{Date: date}, nil
}

func (f *fakeTimesheetService) SuggestProject(ctx context.Context, req timesheet.SuggestProjectRequest) (timesheet.SuggestProjectResponse, error) {
	return timesheet.SuggestProjectResponse{}, timesheet.ErrNoSuggestion
}

type fakeAttendanceService struct {
	attendance.AttendanceService
}

func (fakeAttendanceService) DeclareException(ctx context.Context, req attendance.DeclareExceptionRequest) (attendance.AttendanceResponse, error) {
	if req.EmployeeID == "ghost" {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.AttendanceResponse{EmployeeID: req.EmployeeID, Status: attendance.Status(req.Status), Reason: req.Reason, Recorded: true}, nil
}

func (fakeAttendanceService) GetEmployeeStatus(ctx context.Context, employeeID, date string) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{EmployeeID: employeeID, Date: date, Status: attendance.StatusAbsent}, nil
}

func (fakeAttendanceService) GetTodayStatus(ctx context.Context) (attendance.TodayStatusResponse, error) {
	return attendance.TodayStatusResponse{Date: "2024-04-01", Employees: []attendance.EmployeeDayStatus{}}, nil
}

func (fakeAttendanceService) GetLastChangeMarker(ctx context.Context) (attendance.ChangeMarkerResponse, error) {
	return attendance.ChangeMarkerResponse{Marker: 42}, nil
}

type fakeReportService struct{}

func (fakeReportService) GenerateMonthlyAttendanceReport(ctx context.Context, req report.MonthlyAttendanceReportRequest) (report.MonthlyAttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyAttendanceReport{}, err
	}
	return report.MonthlyAttendanceReport{PeriodMonth: req.Month, PeriodYear: req.Year, Summary: []report.MonthlySummaryRow{}, Matrix: []report.MatrixRow{}}, nil
}

type testServer struct {
	router     *chi.Mux
	jwt        jwt.Service
	timesheets *fakeTimesheetService
}

func newTestServer(t *testing.T, burst int) testServer {
	t.Helper()
	jwtService, err := jwt.NewJWTService(handlerTestSecret, "1h")
	require.NoError(t, err)

	timesheets := &fakeTimesheetService{}
	router := NewRouter(RouterConfig{
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		LoginRatePerSecond: 1,
		LoginBurst:         burst,
	}, jwtService, Handlers{
		Auth:       NewAuthHandler(fakeAuthService{}),
		Employee:   NewEmployeeHandler(fakeEmployeeService{}),
		Timesheet:  NewTimesheetHandler(timesheets),
		Attendance: NewAttendanceHandler(fakeAttendanceService{}),
		Report:     NewReportHandler(fakeReportService{}),
		Dashboard:  NewDashboardHandler(fakeAttendanceService{}),
	})

	return testServer{router: router, jwt: jwtService, timesheets: timesheets}
}

func (s testServer) token(t *testing.T, employeeID string, role auth.Role) string {
	t.Helper()
	token, _, err := s.jwt.GenerateAccessToken(employeeID, role)
	require.NoError(t, err)
	return token
}

func (s testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestLogin(t *testing.T) {
	s := newTestServer(t, 10)

	rec := s.do(http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{EmployeeID: "E1", Password: "password123"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode(t, rec).Success)

	rec = s.do(http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{EmployeeID: "E1", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode(t, rec).Error.Details, "employee_id")
}

func TestLogin_RateLimited(t *testing.T) {
	s := newTestServer(t, 1)

	rec := s.do(http.MethodPost, "/api/v1/auth/admin/login", "", auth.AdminLoginRequest{Password: "x"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/auth/admin/login", "", auth.AdminLoginRequest{Password: "x"})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestSubmitTimesheet_UsesTokenEmployee(t *testing.T) {
	s := newTestServer(t, 10)
	token := s.token(t, "E1", auth.RoleEmployee)

	body := map[string]interface{}{
		"employee_id":      "someone-else",
		"project_name":     "Payroll",
		"task_description": "Fix export",
		"hours_worked":     "2.5",
		"entry_date":       "2024-04-01",
	}
	rec := s.do(http.MethodPost, "/api/v1/timesheets", token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "E1", s.timesheets.lastSubmit.EmployeeID)

	body["hours_worked"] = 0
	rec = s.do(http.MethodPost, "/api/v1/timesheets", token, body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode(t, rec).Error.Details, "hours_worked")

	rec = s.do(http.MethodPost, "/api/v1/timesheets", s.token(t, "", auth.RoleAdmin), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/timesheets", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeclareAttendance(t *testing.T) {
	s := newTestServer(t, 10)

	body := attendance.DeclareExceptionRequest{Date: "2024-04-01", Status: "Leave", Reason: "sick"}
	rec := s.do(http.MethodPost, "/api/v1/attendance/declarations", s.token(t, "E1", auth.RoleEmployee), body)
	assert.Equal(t, http.StatusOK, rec.Code)

	body.Reason = ""
	rec = s.do(http.MethodPost, "/api/v1/attendance/declarations", s.token(t, "E1", auth.RoleEmployee), body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode(t, rec).Error.Details, "reason")

	rec = s.do(http.MethodPost, "/api/v1/attendance/declarations", s.token(t, "ghost", auth.RoleEmployee), body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminRoutes(t *testing.T) {
	s := newTestServer(t, 10)
	admin := s.token(t, "", auth.RoleAdmin)

	for _, path := range []string{
		"/api/v1/employees",
		"/api/v1/timesheets?date=2024-04-01",
		"/api/v1/attendance/today",
		"/api/v1/reports/attendance?year=2024&month=4",
		"/api/v1/dashboard/marker",
	} {
		rec := s.do(http.MethodGet, path, admin, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)

		rec = s.do(http.MethodGet, path, s.token(t, "E1", auth.RoleEmployee), nil)
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
	}

	rec := s.do(http.MethodPost, "/api/v1/employees", admin, employee.CreateEmployeeRequest{EmployeeID: "E1", Name: "Dup", Password: "x"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/employees", admin, employee.CreateEmployeeRequest{EmployeeID: "E9", Name: "New", Password: "x"})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestMonthlyReport_BadQuery(t *testing.T) {
	s := newTestServer(t, 10)
	admin := s.token(t, "", auth.RoleAdmin)

	rec := s.do(http.MethodGet, "/api/v1/reports/attendance?year=2024&month=april", admin, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/reports/attendance?year=2024&month=13", admin, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode(t, rec).Error.Details, "month")
}

func TestMyAttendanceAndSuggestion(t *testing.T) {
	s := newTestServer(t, 10)
	token := s.token(t, "E1", auth.RoleEmployee)

	rec := s.do(http.MethodGet, "/api/v1/attendance/me?date=2024-04-01", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp attendance.AttendanceResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &resp))
	assert.Equal(t, "E1", resp.EmployeeID)
	assert.Equal(t, attendance.StatusAbsent, resp.Status)

	rec = s.do(http.MethodPost, "/api/v1/timesheets/suggest-project", token, timesheet.SuggestProjectRequest{TaskDescription: "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHeartbeat(t *testing.T) {
	s := newTestServer(t, 10)
	rec := s.do(http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

