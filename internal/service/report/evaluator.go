package report

import (
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/checkin"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/report"
)

// EvaluateDay derives the attendance record of one calendar day from its
// scan bucket. The first scan of the day is the check-in candidate, the
// last the check-out candidate; scans in between only establish presence.
//
// Precedence: weekends win over any bucket contents, then future days are
// Upcoming. A past weekday with fewer than two scans yields StatusNone and
// each caller applies its own default (absence in the monthly rollup, a
// placeholder in day and history views). The function is pure: same bucket,
// shift, date and now always produce the same record.
func EvaluateDay(events []checkin.ScanEvent, shift employee.Shift, date, now time.Time) (report.DailyRecord, error) {
	local := date.In(BusinessZone)
	rec := report.DailyRecord{
		Date: time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, BusinessZone),
	}
	if len(events) > 0 {
		rec.EmployeeID = events[0].EmployeeID
	}

	if wd := local.Weekday(); wd == time.Saturday || wd == time.Sunday {
		rec.Status = report.StatusWeekend
		if len(events) >= 2 {
			in := events[0].Timestamp
			out := events[len(events)-1].Timestamp
			rec.CheckIn = &in
			rec.CheckOut = &out
		}
		return rec, nil
	}

	nowLocal := now.In(BusinessZone)
	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, BusinessZone)
	if rec.Date.After(today) {
		rec.Status = report.StatusUpcoming
		return rec, nil
	}

	if len(events) < 2 {
		rec.Status = report.StatusNone
		return rec, nil
	}

	bounds, err := BoundariesFor(shift)
	if err != nil {
		return report.DailyRecord{}, err
	}

	in := events[0].Timestamp
	out := events[len(events)-1].Timestamp
	rec.CheckIn = &in
	rec.CheckOut = &out
	rec.TotalHours = out.Sub(in).Hours()

	lateAt := bounds.LateThreshold.At(rec.Date)
	if in.After(lateAt) {
		rec.Status = report.StatusLate
		rec.LateMinutes = int(in.Sub(lateAt).Minutes())
	} else {
		rec.Status = report.StatusPresent
	}

	endAt := bounds.EarlyThreshold.At(rec.Date)
	if out.After(endAt) {
		rec.OvertimeHours = out.Sub(endAt).Hours()
	} else {
		rec.EarlyLeaveMinutes = int(endAt.Sub(out).Minutes())
	}

	return rec, nil
}
