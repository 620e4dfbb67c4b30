package report

import (
	"time"
)

// Status is the verdict of the daily evaluator for one calendar day.
type Status string

const (
	// StatusNone means the evaluator had nothing to decide: the day is a
	// past weekday with fewer than two scans. Each report builder applies
	// its own default for this case.
	StatusNone     Status = ""
	StatusUpcoming Status = "upcoming"
	StatusWeekend  Status = "weekend"
	StatusPresent  Status = "present"
	StatusLate     Status = "late"
)

// DailyRecord is the evaluated attendance of one employee on one business
// day. CheckIn/CheckOut are UTC instants of the first and last scan; both
// are nil when the day has fewer than two scans. Hour fields are fractional
// hours. The record is derived per request and never persisted.
type DailyRecord struct {
	Date              time.Time
	EmployeeID        string
	CheckIn           *time.Time
	CheckOut          *time.Time
	TotalHours        float64
	OvertimeHours     float64
	Status            Status
	LateMinutes       int
	EarlyLeaveMinutes int
}

// MonthlyStatistics is the per-employee rollup over one calendar month.
type MonthlyStatistics struct {
	EmployeeID        string
	Year              int
	Month             time.Month
	WorkingDays       int
	TotalWorkingHours float64
	OvertimeHours     float64
	LateDays          int
	AbsentDays        int
	AttendanceRate    float64
}
