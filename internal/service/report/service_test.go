package report

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/checkin"
	"github.com/facetrack/attendance-backend-go/internal/domain/department"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	items []employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeEmployeeRepo) GetByEmployeeID(_ context.Context, employeeID string) (employee.Employee, error) {
	for _, e := range f.items {
		if e.EmployeeID == employeeID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	return f.items, nil
}

func (f *fakeEmployeeRepo) ListByDepartment(_ context.Context, departmentID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.items {
		if e.DepartmentID != nil && *e.DepartmentID == departmentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	_, err := f.GetByEmployeeID(ctx, employeeID)
	return err == nil, nil
}

type fakeCheckinRepo struct {
	items []checkin.ScanEvent
}

func (f *fakeCheckinRepo) Create(_ context.Context, event checkin.ScanEvent) (checkin.ScanEvent, error) {
	return event, nil
}

func (f *fakeCheckinRepo) ListByEmployeeID(_ context.Context, employeeID string) ([]checkin.ScanEvent, error) {
	var out []checkin.ScanEvent
	for _, ev := range f.items {
		if ev.EmployeeID == employeeID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeCheckinRepo) ListByEmployeeIDs(_ context.Context, employeeIDs []string, from, to time.Time) ([]checkin.ScanEvent, error) {
	wanted := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		wanted[id] = true
	}
	var out []checkin.ScanEvent
	for _, ev := range f.items {
		if wanted[ev.EmployeeID] && !ev.Timestamp.Before(from) && ev.Timestamp.Before(to) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeCheckinRepo) ListBetween(_ context.Context, from, to time.Time) ([]checkin.ScanEvent, error) {
	var out []checkin.ScanEvent
	for _, ev := range f.items {
		if !ev.Timestamp.Before(from) && ev.Timestamp.Before(to) {
			out = append(out, ev)
		}
	}
	return out, nil
}

type fakeDepartmentRepo struct {
	items []department.Department
}

func (f *fakeDepartmentRepo) Create(_ context.Context, dept department.Department) (department.Department, error) {
	return dept, nil
}

func (f *fakeDepartmentRepo) GetByID(_ context.Context, id string) (department.Department, error) {
	for _, d := range f.items {
		if d.ID == id {
			return d, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (f *fakeDepartmentRepo) GetByName(_ context.Context, name string) (department.Department, error) {
	for _, d := range f.items {
		if d.Name == name {
			return d, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (f *fakeDepartmentRepo) List(_ context.Context) ([]department.Department, error) {
	return f.items, nil
}

func (f *fakeDepartmentRepo) Update(_ context.Context, _ department.Department) error { return nil }

func (f *fakeDepartmentRepo) Delete(_ context.Context, _ string) error { return nil }

func str(s string) *string { return &s }

func newTestService(emps []employee.Employee, events []checkin.ScanEvent, depts []department.Department, now time.Time) *ReportServiceImpl {
	svc := NewReportService(
		&fakeEmployeeRepo{items: emps},
		&fakeCheckinRepo{items: events},
		&fakeDepartmentRepo{items: depts},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	svc.now = func() time.Time { return now }
	return svc
}

func rosterFixture() []employee.Employee {
	return []employee.Employee{
		{
			ID:             "1",
			EmployeeID:     "EMP001",
			FullName:       "Nguyen Van A",
			Shift:          employee.ShiftFullDay,
			DepartmentID:   str("d1"),
			DepartmentName: str("Engineering"),
			PositionName:   str("Backend Developer"),
		},
		{
			ID:             "2",
			EmployeeID:     "EMP002",
			FullName:       "Tran Thi B",
			Shift:          employee.ShiftFullDay,
			DepartmentID:   str("d2"),
			DepartmentName: str("Design"),
			PositionName:   str("Designer"),
		},
	}
}

// March 2025: the 1st/2nd are a weekend, the 3rd a Monday.
func eventsFixture() []checkin.ScanEvent {
	return []checkin.ScanEvent{
		// EMP001, Monday Mar 3: 20 minutes late, leaves on time
		{EmployeeID: "EMP001", Timestamp: at(2025, 3, 3, 8, 20)},
		{EmployeeID: "EMP001", Timestamp: at(2025, 3, 3, 17, 0)},
		// EMP001, Tuesday Mar 4: 15 minutes late, 45 minutes overtime
		{EmployeeID: "EMP001", Timestamp: at(2025, 3, 4, 8, 15)},
		{EmployeeID: "EMP001", Timestamp: at(2025, 3, 4, 17, 45)},
		// EMP002, Tuesday Mar 4: on time, leaves on time
		{EmployeeID: "EMP002", Timestamp: at(2025, 3, 4, 7, 55)},
		{EmployeeID: "EMP002", Timestamp: at(2025, 3, 4, 17, 0)},
	}
}

func TestLateToday(t *testing.T) {
	t.Parallel()

	svc := newTestService(rosterFixture(), eventsFixture(), nil, at(2025, 3, 4, 18, 0))

	out, err := svc.LateToday(context.Background(), report.SnapshotRequest{})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-04", out.Date)
	assert.Equal(t, "All Departments", out.Department)
	assert.Equal(t, 2, out.TotalEmployees)
	assert.Equal(t, 1, out.MatchedCount)
	require.Len(t, out.Employees, 1)

	row := out.Employees[0]
	assert.Equal(t, "EMP001", row.EmployeeID)
	assert.Equal(t, "Nguyen Van A", row.FullName)
	assert.Equal(t, "Engineering", row.Department)
	assert.Equal(t, "08:15", row.CheckTime)
	require.NotNil(t, row.LateMinutes)
	assert.Equal(t, 15, *row.LateMinutes)
	// late on both Mar 3 and Mar 4
	assert.Equal(t, 2, row.TimesThisMonth)
	assert.Nil(t, row.OvertimeHours)
	assert.Nil(t, row.EarlyLeaveMinutes)
}

func TestLateTodayExplicitDate(t *testing.T) {
	t.Parallel()

	svc := newTestService(rosterFixture(), eventsFixture(), nil, at(2025, 3, 4, 18, 0))

	out, err := svc.LateToday(context.Background(), report.SnapshotRequest{Date: str("2025-03-03")})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-03", out.Date)
	require.Len(t, out.Employees, 1)
	assert.Equal(t, "08:20", out.Employees[0].CheckTime)
	require.NotNil(t, out.Employees[0].LateMinutes)
	assert.Equal(t, 20, *out.Employees[0].LateMinutes)
}

func TestLateTodayMalformedDate(t *testing.T) {
	t.Parallel()

	svc := newTestService(rosterFixture(), nil, nil, at(2025, 3, 4, 18, 0))

	_, err := svc.LateToday(context.Background(), report.SnapshotRequest{Date: str("03/04/2025")})
	require.ErrorIs(t, err, report.ErrInvalidDateRange)
}

func TestLateTodayDepartmentFilter(t *testing.T) {
	t.Parallel()

	depts := []department.Department{{ID: "d2", Name: "Design"}}
	svc := newTestService(rosterFixture(), eventsFixture(), depts, at(2025, 3, 4, 18, 0))

	out, err := svc.LateToday(context.Background(), report.SnapshotRequest{DepartmentID: str("d2")})
	require.NoError(t, err)

	assert.Equal(t, "Design", out.Department)
	assert.Equal(t, 1, out.TotalEmployees)
	assert.Equal(t, 0, out.MatchedCount)
	assert.Empty(t, out.Employees)
}

func TestLateTodayDepartmentNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(rosterFixture(), nil, nil, at(2025, 3, 4, 18, 0))

	_, err := svc.LateToday(context.Background(), report.SnapshotRequest{DepartmentID: str("missing")})
	require.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestLateTodayUnclassifiedShiftExcluded(t *testing.T) {
	t.Parallel()

	emps := rosterFixture()
	emps = append(emps, employee.Employee{
		ID:         "3",
		EmployeeID: "EMP003",
		FullName:   "Le Van C",
		Shift:      employee.Shift("night"),
	})
	events := append(eventsFixture(),
		checkin.ScanEvent{EmployeeID: "EMP003", Timestamp: at(2025, 3, 4, 9, 0)},
		checkin.ScanEvent{EmployeeID: "EMP003", Timestamp: at(2025, 3, 4, 18, 0)},
	)

	svc := newTestService(emps, events, nil, at(2025, 3, 4, 18, 30))

	out, err := svc.LateToday(context.Background(), report.SnapshotRequest{})
	require.NoError(t, err)

	// excluded from the verdict list, still part of the raw headcount
	assert.Equal(t, 3, out.TotalEmployees)
	assert.Equal(t, 1, out.MatchedCount)
	assert.Equal(t, "EMP001", out.Employees[0].EmployeeID)
}

func TestEarlyLeaveToday(t *testing.T) {
	t.Parallel()

	emps := []employee.Employee{{
		ID:         "1",
		EmployeeID: "EMP001",
		FullName:   "Nguyen Van A",
		Shift:      employee.ShiftMorning,
	}}
	events := []checkin.ScanEvent{
		{EmployeeID: "EMP001", Timestamp: at(2025, 3, 4, 8, 0)},
		{EmployeeID: "EMP001", Timestamp: at(2025, 3, 4, 11, 30)},
	}
	svc := newTestService(emps, events, nil, at(2025, 3, 4, 12, 0))

	out, err := svc.EarlyLeaveToday(context.Background(), report.SnapshotRequest{})
	require.NoError(t, err)

	require.Len(t, out.Employees, 1)
	row := out.Employees[0]
	assert.Equal(t, "11:30", row.CheckTime)
	require.NotNil(t, row.EarlyLeaveMinutes)
	assert.Equal(t, 30, *row.EarlyLeaveMinutes)
	assert.Equal(t, 1, row.TimesThisMonth)
}

func TestOvertimeToday(t *testing.T) {
	t.Parallel()

	svc := newTestService(rosterFixture(), eventsFixture(), nil, at(2025, 3, 4, 18, 0))

	out, err := svc.OvertimeToday(context.Background(), report.SnapshotRequest{})
	require.NoError(t, err)

	require.Len(t, out.Employees, 1)
	row := out.Employees[0]
	assert.Equal(t, "EMP001", row.EmployeeID)
	assert.Equal(t, "17:45", row.CheckTime)
	require.NotNil(t, row.OvertimeHours)
	assert.InDelta(t, 0.75, *row.OvertimeHours, 0.0001)
	// Mar 3 checkout was exactly 17:00, not overtime
	assert.Equal(t, 1, row.TimesThisMonth)
}

func TestMonthlyStatistics(t *testing.T) {
	t.Parallel()

	events := []checkin.ScanEvent{
		// Mon Mar 3: late, on-time checkout
		{EmployeeID: "EMP001", Timestamp: at(2025, 3, 3, 8, 15)},
		{EmployeeID: "EMP001", Timestamp: at(2025, 3, 3, 17, 45)},
		// Tue Mar 4: single scan, incomplete day
		{EmployeeID: "EMP001", Timestamp: at(2025, 3, 4, 8, 5)},
		// Wed Mar 5: fully on time
		{EmployeeID: "EMP001", Timestamp: at(2025, 3, 5, 8, 0)},
		{EmployeeID: "EMP001", Timestamp: at(2025, 3, 5, 17, 0)},
	}
	svc := newTestService(rosterFixture(), events, nil, at(2025, 4, 1, 9, 0))

	out, err := svc.MonthlyStatistics(context.Background(), report.MonthlyRequest{
		EmployeeID: "EMP001", Month: 3, Year: 2025,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, out.WorkingDays)
	assert.Equal(t, 1, out.AbsentDays)
	assert.Equal(t, 1, out.LateDays)
	assert.InDelta(t, 18.5, out.TotalWorkingHours, 0.0001)
	assert.InDelta(t, 0.75, out.OvertimeHours, 0.0001)
	assert.InDelta(t, 2.0/31.0*100, out.AttendanceRate, 0.0001)

	// check-ins 08:15 and 08:00, check-outs 17:45 and 17:00
	require.NotNil(t, out.AverageCheckIn)
	require.NotNil(t, out.AverageCheckOut)
	assert.Equal(t, "08:07", *out.AverageCheckIn)
	assert.Equal(t, "17:22", *out.AverageCheckOut)
}

func TestMonthlyStatisticsEmptyMonth(t *testing.T) {
	t.Parallel()

	svc := newTestService(rosterFixture(), nil, nil, at(2025, 4, 1, 9, 0))

	out, err := svc.MonthlyStatistics(context.Background(), report.MonthlyRequest{
		EmployeeID: "EMP001", Month: 3, Year: 2025,
	})
	require.NoError(t, err)

	assert.Zero(t, out.WorkingDays)
	assert.Zero(t, out.AbsentDays)
	assert.Zero(t, out.LateDays)
	assert.Zero(t, out.TotalWorkingHours)
	assert.Zero(t, out.AttendanceRate)
	assert.Nil(t, out.AverageCheckIn)
	assert.Nil(t, out.AverageCheckOut)
}

func TestMonthlyStatisticsEmployeeNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil, at(2025, 4, 1, 9, 0))

	_, err := svc.MonthlyStatistics(context.Background(), report.MonthlyRequest{
		EmployeeID: "EMP404", Month: 3, Year: 2025,
	})
	require.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestMonthlyStatisticsInvalidMonth(t *testing.T) {
	t.Parallel()

	svc := newTestService(rosterFixture(), nil, nil, at(2025, 4, 1, 9, 0))

	_, err := svc.MonthlyStatistics(context.Background(), report.MonthlyRequest{
		EmployeeID: "EMP001", Month: 13, Year: 2025,
	})
	require.ErrorIs(t, err, report.ErrInvalidDateRange)
}

func TestMonthlyStatisticsOtherMonthsIgnored(t *testing.T) {
	t.Parallel()

	events := []checkin.ScanEvent{
		// February scans must not leak into March
		{EmployeeID: "EMP001", Timestamp: at(2025, 2, 28, 8, 0)},
		{EmployeeID: "EMP001", Timestamp: at(2025, 2, 28, 17, 0)},
		{EmployeeID: "EMP001", Timestamp: at(2025, 3, 3, 8, 0)},
		{EmployeeID: "EMP001", Timestamp: at(2025, 3, 3, 17, 0)},
	}
	svc := newTestService(rosterFixture(), events, nil, at(2025, 4, 1, 9, 0))

	out, err := svc.MonthlyStatistics(context.Background(), report.MonthlyRequest{
		EmployeeID: "EMP001", Month: 3, Year: 2025,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.WorkingDays)
}

func TestHistory(t *testing.T) {
	t.Parallel()

	events := []checkin.ScanEvent{
		// Mon Mar 3: complete late day
		{EmployeeID: "EMP001", Timestamp: at(2025, 3, 3, 8, 15)},
		{EmployeeID: "EMP001", Timestamp: at(2025, 3, 3, 17, 45)},
		// Tue Mar 4: single scan
		{EmployeeID: "EMP001", Timestamp: at(2025, 3, 4, 8, 5)},
	}
	svc := newTestService(rosterFixture(), events, nil, at(2025, 3, 10, 12, 0))

	out, err := svc.History(context.Background(), report.MonthlyRequest{
		EmployeeID: "EMP001", Month: 3, Year: 2025,
	})
	require.NoError(t, err)

	require.Len(t, out.Days, 31)
	assert.Equal(t, "2025-03-01", out.Days[0].Date)
	assert.Equal(t, "2025-03-31", out.Days[30].Date)

	// Mar 1 is a Saturday
	assert.Equal(t, report.StatusWeekend, out.Days[0].Status)
	assert.Equal(t, report.StatusWeekend, out.Days[1].Status)

	mon := out.Days[2]
	assert.Equal(t, report.StatusLate, mon.Status)
	assert.Equal(t, 15, mon.LateMinutes)
	require.NotNil(t, mon.CheckIn)
	assert.Equal(t, "2025-03-03 08:15:00", *mon.CheckIn)
	require.NotNil(t, mon.CheckOut)
	assert.Equal(t, "2025-03-03 17:45:00", *mon.CheckOut)

	// single scan shows placeholder markers, not a verdict
	tue := out.Days[3]
	assert.Equal(t, report.StatusUpcoming, tue.Status)
	require.NotNil(t, tue.CheckIn)
	assert.Equal(t, "-", *tue.CheckIn)
	require.NotNil(t, tue.CheckOut)
	assert.Equal(t, "-", *tue.CheckOut)

	// Wed Mar 5 has no scans at all: still pending, nulls
	wed := out.Days[4]
	assert.Equal(t, report.StatusUpcoming, wed.Status)
	assert.Nil(t, wed.CheckIn)
	assert.Nil(t, wed.CheckOut)

	// future weekday
	assert.Equal(t, report.StatusUpcoming, out.Days[20].Status)
}

func TestHistoryEmployeeNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil, at(2025, 3, 10, 12, 0))

	_, err := svc.History(context.Background(), report.MonthlyRequest{
		EmployeeID: "EMP404", Month: 3, Year: 2025,
	})
	require.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
