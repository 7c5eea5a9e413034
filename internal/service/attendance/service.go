package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/database"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	transactor     database.Transactor
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	markerRepo     attendance.ChangeMarkerRepository
	loc            *time.Location
	now            func() time.Time
}

func NewAttendanceService(
	transactor database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	markerRepo attendance.ChangeMarkerRepository,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		transactor:     transactor,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		markerRepo:     markerRepo,
		loc:            loc,
		now:            time.Now,
	}
}

// apply runs one event through the derivation rule under the key lock and
// persists the outcome when the rule asks for a write.
func (s *AttendanceServiceImpl) apply(ctx context.Context, employeeID string, date time.Time, ev attendance.Event) (attendance.Record, bool, error) {
	var (
		result  attendance.Record
		written bool
	)

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.attendanceRepo.LockKey(ctx, employeeID, date); err != nil {
			return err
		}

		existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
		if err != nil {
			return err
		}

		next, write, err := attendance.Derive(employeeID, date, existing, ev)
		if err != nil {
			return err
		}
		if !write {
			result = next
			return nil
		}

		saved, err := s.attendanceRepo.Upsert(ctx, next)
		if err != nil {
			return err
		}
		result, written = saved, true
		return nil
	})
	if err != nil {
		return attendance.Record{}, false, err
	}

	return result, written, nil
}

// ApplySubmission implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ApplySubmission(ctx context.Context, employeeID string, date time.Time) (attendance.Record, bool, error) {
	rec, written, err := s.apply(ctx, employeeID, attendance.DateOf(date), attendance.SubmissionEvent())
	if err != nil {
		return attendance.Record{}, false, fmt.Errorf("failed to apply submission: %w", err)
	}
	return rec, written, nil
}

// DeclareException implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeclareException(ctx context.Context, req attendance.DeclareExceptionRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	date, _ := validator.IsValidDate(req.Date)

	if err := s.ensureEmployee(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var (
		rec     attendance.Record
		written bool
	)
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		rec, written, err = s.apply(ctx, req.EmployeeID, date, attendance.DeclarationEvent(attendance.Status(req.Status), req.Reason))
		if err != nil {
			return err
		}
		if _, err := s.BumpChangeMarker(ctx); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(rec, written), nil
}

// GetEmployeeStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeStatus(ctx context.Context, employeeID string, date string) (attendance.AttendanceResponse, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return attendance.AttendanceResponse{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	if err := s.ensureEmployee(ctx, employeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if rec == nil {
		return attendance.AttendanceResponse{
			EmployeeID: employeeID,
			Date:       day.Format(validator.DateLayout),
			Status:     attendance.StatusAbsent,
		}, nil
	}

	return toResponse(*rec, false), nil
}

// GetTodayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetTodayStatus(ctx context.Context) (attendance.TodayStatusResponse, error) {
	today := attendance.DateOf(s.now().In(s.loc))

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return attendance.TodayStatusResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := s.attendanceRepo.ListByDateRange(ctx, today, today)
	if err != nil {
		return attendance.TodayStatusResponse{}, fmt.Errorf("failed to list today's attendance: %w", err)
	}

	byEmployee := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = rec
	}

	statuses := make([]attendance.EmployeeDayStatus, 0, len(employees))
	for _, emp := range employees {
		row := attendance.EmployeeDayStatus{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Status:       attendance.StatusAbsent,
		}
		if rec, ok := byEmployee[emp.ID]; ok {
			row.Status = rec.Status
			row.Reason = rec.Reason
		}
		statuses = append(statuses, row)
	}

	return attendance.TodayStatusResponse{
		Date:         today.Format(validator.DateLayout),
		IsWorkingDay: attendance.IsWorkingDay(today),
		Employees:    statuses,
	}, nil
}

// BumpChangeMarker implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) BumpChangeMarker(ctx context.Context) (int64, error) {
	marker, err := s.markerRepo.Bump(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to bump change marker: %w", err)
	}
	return marker, nil
}

// GetLastChangeMarker implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetLastChangeMarker(ctx context.Context) (attendance.ChangeMarkerResponse, error) {
	marker, err := s.markerRepo.Get(ctx)
	if err != nil {
		return attendance.ChangeMarkerResponse{}, fmt.Errorf("failed to get change marker: %w", err)
	}

	resp := attendance.ChangeMarkerResponse{Marker: marker}
	if marker > 0 {
		changedAt := time.UnixMilli(marker).In(s.loc).Format(time.RFC3339)
		resp.ChangedAt = &changedAt
	}
	return resp, nil
}

func (s *AttendanceServiceImpl) ensureEmployee(ctx context.Context, employeeID string) error {
	exists, err := s.employeeRepo.ExistsByID(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// toResponse renders a ledger row. changed is true when the current request
// wrote it.
func toResponse(rec attendance.Record, changed bool) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date.Format(validator.DateLayout),
		Status:     rec.Status,
		Reason:     rec.Reason,
		Recorded:   true,
		Changed:    changed,
	}
}
