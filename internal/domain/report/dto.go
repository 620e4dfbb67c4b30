package report

import (
	"fmt"

	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// SNAPSHOT REPORT DTOs
// ========================================

// SnapshotRequest selects the population and day for a late/early-leave/
// overtime report. Date defaults to today when empty; DepartmentID nil
// means all departments.
type SnapshotRequest struct {
	Date         *string `json:"date,omitempty"` // YYYY-MM-DD
	DepartmentID *string `json:"department_id,omitempty"`
}

func (r *SnapshotRequest) Validate() error {
	if r.Date != nil && *r.Date != "" {
		if _, valid := validator.IsValidDate(*r.Date); !valid {
			return fmt.Errorf("date must be in YYYY-MM-DD format: %w", ErrInvalidDateRange)
		}
	}
	return nil
}

// SnapshotEmployee is one matched employee in a snapshot report. Exactly one
// of LateMinutes/EarlyLeaveMinutes/OvertimeHours is set, matching the report
// variant. CheckTime is HH:mm in business local time: the check-in for the
// late report, the check-out for the other two.
type SnapshotEmployee struct {
	EmployeeID        string   `json:"employee_id"`
	FullName          string   `json:"full_name"`
	Department        string   `json:"department"`
	Position          string   `json:"position"`
	Shift             string   `json:"shift"`
	CheckTime         string   `json:"check_time"`
	LateMinutes       *int     `json:"late_minutes,omitempty"`
	EarlyLeaveMinutes *int     `json:"early_leave_minutes,omitempty"`
	OvertimeHours     *float64 `json:"overtime_hours,omitempty"`
	TimesThisMonth    int      `json:"times_this_month"`
}

type SnapshotReport struct {
	Date           string             `json:"date"`
	Department     string             `json:"department"`
	TotalEmployees int                `json:"total_employees"`
	MatchedCount   int                `json:"matched_count"`
	Employees      []SnapshotEmployee `json:"employees"`
}

// ========================================
// MONTHLY DTOs
// ========================================

type MonthlyRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *MonthlyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	if r.Month < 1 || r.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12: %w", ErrInvalidDateRange)
	}

	if r.Year < 1970 || r.Year > 9999 {
		return fmt.Errorf("year %d is out of range: %w", r.Year, ErrInvalidDateRange)
	}

	return nil
}

type MonthlyStatisticsResponse struct {
	EmployeeID        string  `json:"employee_id"`
	Year              int     `json:"year"`
	Month             int     `json:"month"`
	WorkingDays       int     `json:"working_days"`
	TotalWorkingHours float64 `json:"total_working_hours"`
	OvertimeHours     float64 `json:"overtime_hours"`
	LateDays          int     `json:"late_days"`
	AbsentDays        int     `json:"absent_days"`
	AverageCheckIn    *string `json:"average_check_in"`  // HH:mm local, null without working days
	AverageCheckOut   *string `json:"average_check_out"` // HH:mm local, null without working days
	AttendanceRate    float64 `json:"attendance_rate"`
}

// DailyRecordResponse is one calendar day in the history view. CheckIn and
// CheckOut are local datetimes; "-" marks a day with a single unmatched
// scan, null a day with no scans at all.
type DailyRecordResponse struct {
	Date              string  `json:"date"`
	EmployeeID        string  `json:"employee_id"`
	CheckIn           *string `json:"check_in"`
	CheckOut          *string `json:"check_out"`
	TotalHours        float64 `json:"total_hours"`
	OvertimeHours     float64 `json:"overtime_hours"`
	Status            Status  `json:"status"`
	LateMinutes       int     `json:"late_minutes"`
	EarlyLeaveMinutes int     `json:"early_leave_minutes"`
}

type HistoryResponse struct {
	EmployeeID string                `json:"employee_id"`
	Year       int                   `json:"year"`
	Month      int                   `json:"month"`
	Days       []DailyRecordResponse `json:"days"`
}
