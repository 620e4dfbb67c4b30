package report

import (
	"testing"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/checkin"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// at builds the UTC instant of a wall-clock time in the business timezone.
func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, BusinessZone).UTC()
}

func scans(employeeID string, times ...time.Time) []checkin.ScanEvent {
	events := make([]checkin.ScanEvent, 0, len(times))
	for i, ts := range times {
		events = append(events, checkin.ScanEvent{
			ID:         string(rune('a' + i)),
			DeviceID:   "terminal-1",
			EmployeeID: employeeID,
			Timestamp:  ts,
		})
	}
	return events
}

func TestEvaluateDayFullDayLateAndOvertime(t *testing.T) {
	t.Parallel()

	// Monday
	date := at(2025, 3, 3, 0, 0)
	now := at(2025, 3, 3, 23, 0)
	events := scans("EMP001", at(2025, 3, 3, 8, 15), at(2025, 3, 3, 17, 45))

	rec, err := EvaluateDay(events, employee.ShiftFullDay, date, now)
	require.NoError(t, err)

	assert.Equal(t, report.StatusLate, rec.Status)
	assert.Equal(t, 15, rec.LateMinutes)
	assert.InDelta(t, 0.75, rec.OvertimeHours, 0.0001)
	assert.InDelta(t, 9.5, rec.TotalHours, 0.0001)
	assert.Equal(t, 0, rec.EarlyLeaveMinutes)
	require.NotNil(t, rec.CheckIn)
	require.NotNil(t, rec.CheckOut)
	assert.Equal(t, "08:15", rec.CheckIn.In(BusinessZone).Format("15:04"))
}

func TestEvaluateDayThresholdBoundary(t *testing.T) {
	t.Parallel()

	date := at(2025, 3, 3, 0, 0)
	now := at(2025, 3, 3, 23, 0)

	exact := scans("EMP001", at(2025, 3, 3, 8, 0), at(2025, 3, 3, 17, 0))
	rec, err := EvaluateDay(exact, employee.ShiftFullDay, date, now)
	require.NoError(t, err)
	assert.Equal(t, report.StatusPresent, rec.Status)
	assert.Equal(t, 0, rec.LateMinutes)
	assert.Zero(t, rec.OvertimeHours)
	assert.Equal(t, 0, rec.EarlyLeaveMinutes)

	oneAfter := scans("EMP001", at(2025, 3, 3, 8, 1), at(2025, 3, 3, 17, 0))
	rec, err = EvaluateDay(oneAfter, employee.ShiftFullDay, date, now)
	require.NoError(t, err)
	assert.Equal(t, report.StatusLate, rec.Status)
	assert.Equal(t, 1, rec.LateMinutes)
}

func TestEvaluateDayEarlyLeave(t *testing.T) {
	t.Parallel()

	date := at(2025, 3, 3, 0, 0)
	now := at(2025, 3, 3, 23, 0)
	events := scans("EMP001", at(2025, 3, 3, 8, 0), at(2025, 3, 3, 16, 30))

	rec, err := EvaluateDay(events, employee.ShiftFullDay, date, now)
	require.NoError(t, err)
	assert.Equal(t, report.StatusPresent, rec.Status)
	assert.Equal(t, 30, rec.EarlyLeaveMinutes)
	assert.Zero(t, rec.OvertimeHours)
}

func TestEvaluateDayAfternoonShift(t *testing.T) {
	t.Parallel()

	date := at(2025, 3, 3, 0, 0)
	now := at(2025, 3, 3, 23, 0)

	// 12:50 is before the 13:00 boundary, 16:40 before 17:00
	onTime := scans("EMP001", at(2025, 3, 3, 12, 50), at(2025, 3, 3, 16, 40))
	rec, err := EvaluateDay(onTime, employee.ShiftAfternoon, date, now)
	require.NoError(t, err)
	assert.Equal(t, report.StatusPresent, rec.Status)
	assert.Equal(t, 20, rec.EarlyLeaveMinutes)
	assert.Zero(t, rec.OvertimeHours)

	late := scans("EMP001", at(2025, 3, 3, 13, 10), at(2025, 3, 3, 17, 0))
	rec, err = EvaluateDay(late, employee.ShiftAfternoon, date, now)
	require.NoError(t, err)
	assert.Equal(t, report.StatusLate, rec.Status)
	assert.Equal(t, 10, rec.LateMinutes)
}

func TestEvaluateDayWeekendPrecedence(t *testing.T) {
	t.Parallel()

	// Saturday, scans present anyway
	date := at(2025, 3, 1, 0, 0)
	now := at(2025, 3, 10, 12, 0)
	events := scans("EMP001", at(2025, 3, 1, 8, 30), at(2025, 3, 1, 17, 30))

	rec, err := EvaluateDay(events, employee.ShiftFullDay, date, now)
	require.NoError(t, err)
	assert.Equal(t, report.StatusWeekend, rec.Status)
	assert.Zero(t, rec.TotalHours)
	assert.Zero(t, rec.OvertimeHours)
	assert.Equal(t, 0, rec.LateMinutes)
	assert.NotNil(t, rec.CheckIn)
	assert.NotNil(t, rec.CheckOut)
}

func TestEvaluateDayUpcoming(t *testing.T) {
	t.Parallel()

	date := at(2025, 3, 5, 0, 0)
	now := at(2025, 3, 3, 12, 0)

	rec, err := EvaluateDay(nil, employee.ShiftFullDay, date, now)
	require.NoError(t, err)
	assert.Equal(t, report.StatusUpcoming, rec.Status)
	assert.Nil(t, rec.CheckIn)
}

func TestEvaluateDaySingleScan(t *testing.T) {
	t.Parallel()

	date := at(2025, 3, 3, 0, 0)
	now := at(2025, 3, 4, 12, 0)
	events := scans("EMP001", at(2025, 3, 3, 8, 5))

	rec, err := EvaluateDay(events, employee.ShiftMorning, date, now)
	require.NoError(t, err)
	assert.Equal(t, report.StatusNone, rec.Status)
	assert.Nil(t, rec.CheckIn)
	assert.Nil(t, rec.CheckOut)
	assert.Zero(t, rec.TotalHours)
}

func TestEvaluateDayUnclassifiedShift(t *testing.T) {
	t.Parallel()

	date := at(2025, 3, 3, 0, 0)
	now := at(2025, 3, 3, 23, 0)
	events := scans("EMP001", at(2025, 3, 3, 8, 0), at(2025, 3, 3, 17, 0))

	_, err := EvaluateDay(events, employee.Shift("night"), date, now)
	require.ErrorIs(t, err, report.ErrUnclassifiedShift)
}

func TestEvaluateDayMiddleScansIgnored(t *testing.T) {
	t.Parallel()

	date := at(2025, 3, 3, 0, 0)
	now := at(2025, 3, 3, 23, 0)
	events := scans("EMP001",
		at(2025, 3, 3, 8, 0),
		at(2025, 3, 3, 12, 0),
		at(2025, 3, 3, 12, 30),
		at(2025, 3, 3, 17, 0),
	)

	rec, err := EvaluateDay(events, employee.ShiftFullDay, date, now)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, rec.TotalHours, 0.0001)
	assert.Equal(t, "08:00", rec.CheckIn.In(BusinessZone).Format("15:04"))
	assert.Equal(t, "17:00", rec.CheckOut.In(BusinessZone).Format("15:04"))
}

func TestEvaluateDayIdempotent(t *testing.T) {
	t.Parallel()

	date := at(2025, 3, 3, 0, 0)
	now := at(2025, 3, 3, 23, 0)
	events := scans("EMP001", at(2025, 3, 3, 8, 15), at(2025, 3, 3, 17, 45))

	first, err := EvaluateDay(events, employee.ShiftFullDay, date, now)
	require.NoError(t, err)
	second, err := EvaluateDay(events, employee.ShiftFullDay, date, now)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
