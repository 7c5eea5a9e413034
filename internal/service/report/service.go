package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance/internal/domain/report"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/validator"
)

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	loc            *time.Location
	now            func() time.Time
}

func NewReportService(employeeRepo employee.EmployeeRepository, attendanceRepo attendance.AttendanceRepository, loc *time.Location) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		loc:            loc,
		now:            time.Now,
	}
}

// GenerateMonthlyAttendanceReport generates the monthly attendance report
func (s *ReportServiceImpl) GenerateMonthlyAttendanceReport(ctx context.Context, req report.MonthlyAttendanceReportRequest) (report.MonthlyAttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyAttendanceReport{}, err
	}

	period := report.NewPeriod(req.Year, req.Month)

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.MonthlyAttendanceReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := s.attendanceRepo.ListByDateRange(ctx, period.Start(), period.End())
	if err != nil {
		return report.MonthlyAttendanceReport{}, fmt.Errorf("failed to get attendance data: %w", err)
	}

	summary, matrix, skipped := report.Build(period, employees, records)
	for _, sk := range skipped {
		slog.Warn("attendance row skipped in monthly report",
			"employee_id", sk.Record.EmployeeID,
			"date", sk.Record.Date.Format(validator.DateLayout),
			"status", sk.Record.Status,
			"reason", sk.Reason,
		)
	}

	return report.MonthlyAttendanceReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: period.Start().Format(validator.DateLayout),
		PeriodEnd:   period.End().Format(validator.DateLayout),
		WorkingDays: period.WorkingDays(),
		GeneratedAt: s.now().In(s.loc).Format(time.RFC3339),
		Summary:     summary,
		Matrix:      matrix,
	}, nil
}
