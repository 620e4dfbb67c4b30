package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/checkin"
	"github.com/facetrack/attendance-backend-go/internal/domain/department"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	checkinRepo    checkin.CheckinRepository
	departmentRepo department.DepartmentRepository
	logger         *slog.Logger

	// now is swapped out in tests
	now func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	checkinRepo checkin.CheckinRepository,
	departmentRepo department.DepartmentRepository,
	logger *slog.Logger,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		checkinRepo:    checkinRepo,
		departmentRepo: departmentRepo,
		logger:         logger,
		now:            time.Now,
	}
}

var _ report.ReportService = (*ReportServiceImpl)(nil)

// snapshotKind selects which verdict of the daily record a snapshot
// report surfaces.
type snapshotKind int

const (
	snapshotLate snapshotKind = iota
	snapshotEarlyLeave
	snapshotOvertime
)

func (k snapshotKind) matches(rec report.DailyRecord) bool {
	switch k {
	case snapshotLate:
		return rec.Status == report.StatusLate
	case snapshotEarlyLeave:
		return rec.CheckOut != nil && rec.EarlyLeaveMinutes > 0
	case snapshotOvertime:
		return rec.OvertimeHours > 0
	}
	return false
}

func (s *ReportServiceImpl) LateToday(ctx context.Context, req report.SnapshotRequest) (report.SnapshotReport, error) {
	return s.snapshot(ctx, req, snapshotLate)
}

func (s *ReportServiceImpl) EarlyLeaveToday(ctx context.Context, req report.SnapshotRequest) (report.SnapshotReport, error) {
	return s.snapshot(ctx, req, snapshotEarlyLeave)
}

func (s *ReportServiceImpl) OvertimeToday(ctx context.Context, req report.SnapshotRequest) (report.SnapshotReport, error) {
	return s.snapshot(ctx, req, snapshotOvertime)
}

// snapshot builds one late/early-leave/overtime report. The whole target
// month of scans is fetched once for the population; the per-day verdicts
// for the headline row and for the times-this-month counter both read the
// same buckets, so the two can never disagree.
func (s *ReportServiceImpl) snapshot(ctx context.Context, req report.SnapshotRequest, kind snapshotKind) (report.SnapshotReport, error) {
	if err := req.Validate(); err != nil {
		return report.SnapshotReport{}, err
	}

	now := s.now()
	targetDay := localMidnight(now)
	if req.Date != nil && *req.Date != "" {
		parsed, _ := time.ParseInLocation("2006-01-02", *req.Date, BusinessZone)
		targetDay = parsed
	}

	deptName := "All Departments"
	var (
		employees []employee.Employee
		err       error
	)
	if req.DepartmentID != nil && *req.DepartmentID != "" {
		dept, derr := s.departmentRepo.GetByID(ctx, *req.DepartmentID)
		if derr != nil {
			if errors.Is(derr, department.ErrDepartmentNotFound) {
				return report.SnapshotReport{}, derr
			}
			return report.SnapshotReport{}, fmt.Errorf("failed to resolve department: %w", derr)
		}
		deptName = dept.Name
		employees, err = s.employeeRepo.ListByDepartment(ctx, *req.DepartmentID)
	} else {
		employees, err = s.employeeRepo.List(ctx)
	}
	if err != nil {
		return report.SnapshotReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	monthStart := time.Date(targetDay.Year(), targetDay.Month(), 1, 0, 0, 0, 0, BusinessZone)
	monthEnd := monthStart.AddDate(0, 1, 0)
	daysInMonth := monthEnd.AddDate(0, 0, -1).Day()

	ids := make([]string, 0, len(employees))
	for _, emp := range employees {
		ids = append(ids, emp.EmployeeID)
	}
	events, err := s.checkinRepo.ListByEmployeeIDs(ctx, ids, monthStart.UTC(), monthEnd.UTC())
	if err != nil {
		return report.SnapshotReport{}, fmt.Errorf("failed to load scan events: %w", err)
	}
	buckets := GroupByLocalDay(events)

	out := report.SnapshotReport{
		Date:           targetDay.Format("2006-01-02"),
		Department:     deptName,
		TotalEmployees: len(employees),
		Employees:      make([]report.SnapshotEmployee, 0),
	}

	for _, emp := range employees {
		rec, err := EvaluateDay(buckets[BucketKey{emp.EmployeeID, out.Date}], emp.Shift, targetDay, now)
		if err != nil {
			if errors.Is(err, report.ErrUnclassifiedShift) {
				s.logger.Warn("skipping employee with unclassified shift",
					"employee_id", emp.EmployeeID,
					"shift", emp.Shift)
				continue
			}
			return report.SnapshotReport{}, err
		}
		if !kind.matches(rec) {
			continue
		}

		row := report.SnapshotEmployee{
			EmployeeID: emp.EmployeeID,
			FullName:   emp.FullName,
			Department: deref(emp.DepartmentName),
			Position:   deref(emp.PositionName),
			Shift:      string(emp.Shift),
		}
		switch kind {
		case snapshotLate:
			row.CheckTime = rec.CheckIn.In(BusinessZone).Format("15:04")
			minutes := rec.LateMinutes
			row.LateMinutes = &minutes
		case snapshotEarlyLeave:
			row.CheckTime = rec.CheckOut.In(BusinessZone).Format("15:04")
			minutes := rec.EarlyLeaveMinutes
			row.EarlyLeaveMinutes = &minutes
		case snapshotOvertime:
			row.CheckTime = rec.CheckOut.In(BusinessZone).Format("15:04")
			hours := rec.OvertimeHours
			row.OvertimeHours = &hours
		}

		for day := 1; day <= daysInMonth; day++ {
			date := monthStart.AddDate(0, 0, day-1)
			dayRec, err := EvaluateDay(buckets[BucketKey{emp.EmployeeID, date.Format("2006-01-02")}], emp.Shift, date, now)
			if err != nil {
				return report.SnapshotReport{}, err
			}
			if kind.matches(dayRec) {
				row.TimesThisMonth++
			}
		}

		out.Employees = append(out.Employees, row)
	}

	out.MatchedCount = len(out.Employees)
	return out, nil
}

func (s *ReportServiceImpl) MonthlyStatistics(ctx context.Context, req report.MonthlyRequest) (report.MonthlyStatisticsResponse, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyStatisticsResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return report.MonthlyStatisticsResponse{}, err
		}
		return report.MonthlyStatisticsResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	events, err := s.checkinRepo.ListByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return report.MonthlyStatisticsResponse{}, fmt.Errorf("failed to load scan events: %w", err)
	}
	buckets := GroupByLocalDay(events)

	now := s.now()
	monthStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, BusinessZone)
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	stats := report.MonthlyStatistics{
		EmployeeID: req.EmployeeID,
		Year:       req.Year,
		Month:      time.Month(req.Month),
	}
	var checkInMinutes, checkOutMinutes, pairDays int

	for day := 1; day <= daysInMonth; day++ {
		date := monthStart.AddDate(0, 0, day-1)
		bucket := buckets[BucketKey{req.EmployeeID, date.Format("2006-01-02")}]

		// Zero scans on a day contributes nothing to the month; one scan is
		// an unmatched check-in and counts as an absence.
		if len(bucket) == 0 {
			continue
		}
		if len(bucket) == 1 {
			if !isWeekend(date) {
				stats.AbsentDays++
			}
			continue
		}

		rec, err := EvaluateDay(bucket, emp.Shift, date, now)
		if err != nil {
			return report.MonthlyStatisticsResponse{}, err
		}

		stats.WorkingDays++
		stats.TotalWorkingHours += rec.TotalHours
		stats.OvertimeHours += rec.OvertimeHours
		if rec.Status == report.StatusLate {
			stats.LateDays++
		}
		if rec.CheckIn != nil {
			in := rec.CheckIn.In(BusinessZone)
			out := rec.CheckOut.In(BusinessZone)
			checkInMinutes += in.Hour()*60 + in.Minute()
			checkOutMinutes += out.Hour()*60 + out.Minute()
			pairDays++
		}
	}

	stats.AttendanceRate = float64(stats.WorkingDays) / float64(daysInMonth) * 100

	resp := report.MonthlyStatisticsResponse{
		EmployeeID:        stats.EmployeeID,
		Year:              stats.Year,
		Month:             int(stats.Month),
		WorkingDays:       stats.WorkingDays,
		TotalWorkingHours: stats.TotalWorkingHours,
		OvertimeHours:     stats.OvertimeHours,
		LateDays:          stats.LateDays,
		AbsentDays:        stats.AbsentDays,
		AttendanceRate:    stats.AttendanceRate,
	}
	if pairDays > 0 {
		avgIn := clock(checkInMinutes / pairDays)
		avgOut := clock(checkOutMinutes / pairDays)
		resp.AverageCheckIn = &avgIn
		resp.AverageCheckOut = &avgOut
	}
	return resp, nil
}

func (s *ReportServiceImpl) History(ctx context.Context, req report.MonthlyRequest) (report.HistoryResponse, error) {
	if err := req.Validate(); err != nil {
		return report.HistoryResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return report.HistoryResponse{}, err
		}
		return report.HistoryResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	events, err := s.checkinRepo.ListByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return report.HistoryResponse{}, fmt.Errorf("failed to load scan events: %w", err)
	}
	buckets := GroupByLocalDay(events)

	now := s.now()
	monthStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, BusinessZone)
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	resp := report.HistoryResponse{
		EmployeeID: req.EmployeeID,
		Year:       req.Year,
		Month:      req.Month,
		Days:       make([]report.DailyRecordResponse, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		date := monthStart.AddDate(0, 0, day-1)
		bucket := buckets[BucketKey{req.EmployeeID, date.Format("2006-01-02")}]

		rec, err := EvaluateDay(bucket, emp.Shift, date, now)
		if err != nil {
			return report.HistoryResponse{}, err
		}
		rec.EmployeeID = req.EmployeeID

		dayResp := toDailyResponse(rec)
		// The calendar shows past weekdays without a scan pair as still
		// pending, never as zero-hour working days. A lone scan is marked
		// with "-" to tell it apart from a day with no scans at all.
		if rec.Status == report.StatusNone {
			dayResp.Status = report.StatusUpcoming
			if len(bucket) == 1 {
				dash := "-"
				dayResp.CheckIn = &dash
				dayResp.CheckOut = &dash
			}
		}
		resp.Days = append(resp.Days, dayResp)
	}

	return resp, nil
}

func toDailyResponse(rec report.DailyRecord) report.DailyRecordResponse {
	resp := report.DailyRecordResponse{
		Date:              rec.Date.Format("2006-01-02"),
		EmployeeID:        rec.EmployeeID,
		TotalHours:        rec.TotalHours,
		OvertimeHours:     rec.OvertimeHours,
		Status:            rec.Status,
		LateMinutes:       rec.LateMinutes,
		EarlyLeaveMinutes: rec.EarlyLeaveMinutes,
	}
	if rec.CheckIn != nil {
		v := rec.CheckIn.In(BusinessZone).Format("2006-01-02 15:04:05")
		resp.CheckIn = &v
	}
	if rec.CheckOut != nil {
		v := rec.CheckOut.In(BusinessZone).Format("2006-01-02 15:04:05")
		resp.CheckOut = &v
	}
	return resp
}

func localMidnight(t time.Time) time.Time {
	l := t.In(BusinessZone)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, BusinessZone)
}

func isWeekend(date time.Time) bool {
	wd := date.In(BusinessZone).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func clock(totalMinutes int) string {
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
