package report

import (
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/attendance"
)

// Period is one calendar month.
type Period struct {
	Year  int
	Month time.Month
}

func NewPeriod(year, month int) Period {
	return Period{Year: year, Month: time.Month(month)}
}

// Start is the first day of the month at midnight UTC.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the last day of the month at midnight UTC.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

// Days returns the number of calendar days, leap years included.
func (p Period) Days() int {
	return p.End().Day()
}

// Dates lists every calendar day of the month in order.
func (p Period) Dates() []time.Time {
	dates := make([]time.Time, 0, p.Days())
	for d := p.Start(); d.Month() == p.Month; d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// WorkingDays counts the Monday-Friday days of the month.
func (p Period) WorkingDays() int {
	n := 0
	for _, d := range p.Dates() {
		if attendance.IsWorkingDay(d) {
			n++
		}
	}
	return n
}

// Contains reports whether date falls inside the month.
func (p Period) Contains(date time.Time) bool {
	y, m, _ := date.Date()
	return y == p.Year && m == p.Month
}
