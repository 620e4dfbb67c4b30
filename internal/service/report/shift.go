package report

import (
	"fmt"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/report"
)

// BusinessZone is the fixed office timezone. Terminals report UTC instants;
// every calendar decision (day boundaries, thresholds, weekends) happens in
// UTC+7, which has no daylight-saving transitions.
var BusinessZone = time.FixedZone("UTC+7", 7*60*60)

// TimeOfDay is a wall-clock boundary in the business timezone.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// At anchors the boundary to a calendar date, producing an absolute instant.
func (t TimeOfDay) At(date time.Time) time.Time {
	d := date.In(BusinessZone)
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour, t.Minute, 0, 0, BusinessZone)
}

// ShiftBoundaries are the two policy thresholds of a shift: arrival at or
// before LateThreshold is on time, departure past EarlyThreshold is
// overtime, departure before it is an early leave.
type ShiftBoundaries struct {
	LateThreshold  TimeOfDay
	EarlyThreshold TimeOfDay
}

var shiftBoundaries = map[employee.Shift]ShiftBoundaries{
	employee.ShiftFullDay:   {LateThreshold: TimeOfDay{8, 0}, EarlyThreshold: TimeOfDay{17, 0}},
	employee.ShiftMorning:   {LateThreshold: TimeOfDay{8, 0}, EarlyThreshold: TimeOfDay{12, 0}},
	employee.ShiftAfternoon: {LateThreshold: TimeOfDay{13, 0}, EarlyThreshold: TimeOfDay{17, 0}},
}

// BoundariesFor resolves the policy thresholds for a shift. An unknown
// shift yields ErrUnclassifiedShift; the employee must then be excluded
// from lateness/overtime computation, not scored as zero.
func BoundariesFor(shift employee.Shift) (ShiftBoundaries, error) {
	b, ok := shiftBoundaries[shift]
	if !ok {
		return ShiftBoundaries{}, fmt.Errorf("shift %q: %w", shift, report.ErrUnclassifiedShift)
	}
	return b, nil
}
