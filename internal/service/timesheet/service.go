package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance/internal/domain/timesheet"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/database"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TimesheetServiceImpl struct {
	transactor        database.Transactor
	timesheetRepo     timesheet.TimesheetRepository
	employeeRepo      employee.EmployeeRepository
	attendanceService attendance.AttendanceService
	suggester         timesheet.ProjectSuggester
	loc               *time.Location
	now               func() time.Time
}

func NewTimesheetService(
	transactor database.Transactor,
	timesheetRepo timesheet.TimesheetRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceService attendance.AttendanceService,
	suggester timesheet.ProjectSuggester,
	loc *time.Location,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		transactor:        transactor,
		timesheetRepo:     timesheetRepo,
		employeeRepo:      employeeRepo,
		attendanceService: attendanceService,
		suggester:         suggester,
		loc:               loc,
		now:               time.Now,
	}
}

// RecordTaskSubmission implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) RecordTaskSubmission(ctx context.Context, req timesheet.SubmitTaskRequest) (timesheet.SubmitTaskResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.SubmitTaskResponse{}, err
	}
	entryDate, _ := validator.IsValidDate(req.EntryDate)

	id, err := uuid.NewV7()
	if err != nil {
		return timesheet.SubmitTaskResponse{}, fmt.Errorf("failed to generate entry id: %w", err)
	}

	var (
		entry   timesheet.Entry
		rec     attendance.Record
		written bool
	)
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return err
		}

		entry, err = s.timesheetRepo.Create(ctx, timesheet.Entry{
			ID:              id.String(),
			EmployeeID:      emp.ID,
			ProjectName:     req.ProjectName,
			TaskDescription: req.TaskDescription,
			HoursWorked:     req.HoursWorked,
			EntryDate:       entryDate,
			SubmittedAt:     s.now().In(s.loc),
		})
		if err != nil {
			return err
		}
		entry.EmployeeName = &emp.Name

		rec, written, err = s.attendanceService.ApplySubmission(ctx, emp.ID, entryDate)
		if err != nil {
			return err
		}

		if _, err := s.attendanceService.BumpChangeMarker(ctx); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return timesheet.SubmitTaskResponse{}, err
	}

	return timesheet.SubmitTaskResponse{
		Entry: toEntryResponse(entry, s.loc),
		Attendance: attendance.AttendanceResponse{
			EmployeeID: rec.EmployeeID,
			Date:       rec.Date.Format(validator.DateLayout),
			Status:     rec.Status,
			Reason:     rec.Reason,
			Recorded:   true,
			Changed:    written,
		},
	}, nil
}

// GetDailyTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetDailyTimesheet(ctx context.Context, date string) (timesheet.DailyTimesheetResponse, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return timesheet.DailyTimesheetResponse{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	entries, err := s.timesheetRepo.ListByDate(ctx, day)
	if err != nil {
		return timesheet.DailyTimesheetResponse{}, fmt.Errorf("failed to list timesheet entries: %w", err)
	}

	resp := timesheet.DailyTimesheetResponse{
		Date:    day.Format(validator.DateLayout),
		Entries: make([]timesheet.EntryResponse, 0, len(entries)),
		Totals:  make([]timesheet.EmployeeHours, 0),
	}

	// Totals keep the order in which each employee first appears.
	totalIndex := make(map[string]int)
	for _, entry := range entries {
		er := toEntryResponse(entry, s.loc)
		resp.Entries = append(resp.Entries, er)

		i, ok := totalIndex[entry.EmployeeID]
		if !ok {
			i = len(resp.Totals)
			totalIndex[entry.EmployeeID] = i
			resp.Totals = append(resp.Totals, timesheet.EmployeeHours{
				EmployeeID:   entry.EmployeeID,
				EmployeeName: er.EmployeeName,
				TotalHours:   decimal.Zero,
			})
		}
		resp.Totals[i].TotalHours = resp.Totals[i].TotalHours.Add(entry.HoursWorked)
	}

	return resp, nil
}

// SuggestProject implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) SuggestProject(ctx context.Context, req timesheet.SuggestProjectRequest) (timesheet.SuggestProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.SuggestProjectResponse{}, err
	}

	candidates := req.Candidates
	if len(candidates) == 0 {
		names, err := s.timesheetRepo.ListProjectNames(ctx)
		if err != nil {
			return timesheet.SuggestProjectResponse{}, fmt.Errorf("failed to list project names: %w", err)
		}
		candidates = names
	}

	label, err := s.suggester.Suggest(ctx, req.TaskDescription, candidates)
	if err != nil {
		return timesheet.SuggestProjectResponse{}, err
	}

	return timesheet.SuggestProjectResponse{ProjectName: label}, nil
}

func toEntryResponse(entry timesheet.Entry, loc *time.Location) timesheet.EntryResponse {
	resp := timesheet.EntryResponse{
		ID:              entry.ID,
		EmployeeID:      entry.EmployeeID,
		ProjectName:     entry.ProjectName,
		TaskDescription: entry.TaskDescription,
		HoursWorked:     entry.HoursWorked,
		EntryDate:       entry.EntryDate.Format(validator.DateLayout),
		SubmittedAt:     entry.SubmittedAt.In(loc).Format(time.RFC3339),
	}
	if entry.EmployeeName != nil {
		resp.EmployeeName = *entry.EmployeeName
	}
	return resp
}
