package report

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func record(id string, d time.Time, status attendance.Status) attendance.Record {
	return attendance.Record{EmployeeID: id, Date: d, Status: status}
}

func TestPeriod(t *testing.T) {
	cases := []struct {
		year, month       int
		days, workingDays int
	}{
		{2024, 4, 30, 22},
		{2024, 2, 29, 21},
		{2023, 2, 28, 20},
		{2024, 6, 30, 20},
		{2024, 12, 31, 22},
	}
	for _, c := range cases {
		p := NewPeriod(c.year, c.month)
		assert.Equal(t, c.days, p.Days(), "%d-%02d days", c.year, c.month)
		assert.Len(t, p.Dates(), c.days)
		assert.Equal(t, c.workingDays, p.WorkingDays(), "%d-%02d working days", c.year, c.month)
	}

	p := NewPeriod(2024, 2)
	assert.Equal(t, date(2024, time.February, 1), p.Start())
	assert.Equal(t, date(2024, time.February, 29), p.End())
	assert.True(t, p.Contains(date(2024, time.February, 29)))
	assert.False(t, p.Contains(date(2024, time.March, 1)))
}

func TestBuild_April2024Example(t *testing.T) {
	p := NewPeriod(2024, 4)
	employees := []employee.Employee{{ID: "E1", Name: "Asha"}}
	records := []attendance.Record{
		record("E1", date(2024, time.April, 1), attendance.StatusPresent),
		record("E1", date(2024, time.April, 2), attendance.StatusPresent),
		record("E1", date(2024, time.April, 3), attendance.StatusPresent),
		record("E1", date(2024, time.April, 4), attendance.StatusLeave),
	}

	summary, matrix, skipped := Build(p, employees, records)

	assert.Empty(t, skipped)
	require.Len(t, summary, 1)
	assert.Equal(t, MonthlySummaryRow{
		EmployeeID: "E1", EmployeeName: "Asha",
		Present: 3, HalfDay: 0, Leave: 1, TotalLogged: 4, Absent: 18,
	}, summary[0])

	require.Len(t, matrix, 1)
	days := matrix[0].Days
	require.Len(t, days, 30)

	weekends := map[int]bool{6: true, 7: true, 13: true, 14: true, 20: true, 21: true, 27: true, 28: true}
	for i, cell := range days {
		dayNum := i + 1
		assert.Equal(t, date(2024, time.April, dayNum).Format("2006-01-02"), cell.Date)
		switch {
		case dayNum <= 3:
			assert.Equal(t, attendance.StatusPresent, cell.Status, dayNum)
		case dayNum == 4:
			assert.Equal(t, attendance.StatusLeave, cell.Status, dayNum)
		case weekends[dayNum]:
			assert.Equal(t, attendance.StatusWeekend, cell.Status, dayNum)
		default:
			assert.Equal(t, attendance.StatusAbsent, cell.Status, dayNum)
		}
	}
}

func TestBuild_EmployeeWithoutRowsIsFullyAbsent(t *testing.T) {
	p := NewPeriod(2024, 4)
	employees := []employee.Employee{{ID: "E1"}, {ID: "E2"}}

	summary, matrix, _ := Build(p, employees, nil)

	require.Len(t, summary, 2)
	for _, row := range summary {
		assert.Equal(t, 0, row.Present)
		assert.Equal(t, 0, row.HalfDay)
		assert.Equal(t, 0, row.Leave)
		assert.Equal(t, 22, row.Absent)
	}
	for _, row := range matrix {
		assert.Len(t, row.Days, 30)
	}
}

func TestBuild_AbsentNeverNegative(t *testing.T) {
	p := NewPeriod(2024, 2)
	var records []attendance.Record
	for _, d := range p.Dates() {
		records = append(records, record("E1", d, attendance.StatusPresent))
	}

	summary, matrix, skipped := Build(p, []employee.Employee{{ID: "E1"}}, records)

	assert.Empty(t, skipped)
	assert.Equal(t, 29, summary[0].Present)
	assert.Equal(t, 0, summary[0].Absent)
	// weekend rows replace the Weekend default
	assert.Equal(t, attendance.StatusPresent, matrix[0].Days[2].Status)
}

func TestBuild_SkipsRowsThatCannotBePlaced(t *testing.T) {
	p := NewPeriod(2024, 4)
	employees := []employee.Employee{{ID: "E1"}}
	records := []attendance.Record{
		record("E1", date(2024, time.April, 1), attendance.StatusHalfDay),
		record("E1", date(2024, time.April, 1), attendance.StatusLeave),
		record("ghost", date(2024, time.April, 2), attendance.StatusPresent),
		record("E1", date(2024, time.May, 1), attendance.StatusPresent),
		record("E1", date(2024, time.April, 3), attendance.StatusAbsent),
	}

	summary, matrix, skipped := Build(p, employees, records)

	assert.Len(t, skipped, 4)
	assert.Equal(t, 1, summary[0].HalfDay)
	assert.Equal(t, 0, summary[0].Leave)
	assert.Equal(t, 21, summary[0].Absent)
	assert.Equal(t, attendance.StatusHalfDay, matrix[0].Days[0].Status)
	assert.Equal(t, attendance.StatusAbsent, matrix[0].Days[2].Status)
}

func TestBuild_EmptyDirectory(t *testing.T) {
	summary, matrix, skipped := Build(NewPeriod(2024, 4), nil, []attendance.Record{
		record("E1", date(2024, time.April, 1), attendance.StatusPresent),
	})

	assert.NotNil(t, summary)
	assert.NotNil(t, matrix)
	assert.Empty(t, summary)
	assert.Empty(t, matrix)
	assert.Empty(t, skipped)
}

func TestMonthlyAttendanceReportRequest_Validate(t *testing.T) {
	req := MonthlyAttendanceReportRequest{Year: 2024, Month: 4}
	assert.NoError(t, req.Validate())

	req = MonthlyAttendanceReportRequest{Year: 0, Month: 13}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "month")
	assert.Contains(t, err.Error(), "year")
}
