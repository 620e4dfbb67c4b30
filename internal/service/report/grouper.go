package report

import (
	"sort"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/checkin"
)

// BucketKey identifies one employee's scans on one business-local calendar
// day, the same keying the devices' raw feed is reconciled under everywhere.
type BucketKey struct {
	EmployeeID string
	Date       string // YYYY-MM-DD in the business timezone
}

// LocalDate renders ts as a calendar date in the business timezone. A scan
// at 23:30 UTC belongs to the next local day.
func LocalDate(ts time.Time) string {
	return ts.In(BusinessZone).Format("2006-01-02")
}

// GroupByLocalDay buckets scan events per employee per business-local day.
// Events are ordered ascending by timestamp inside each bucket; equal
// timestamps keep their input order so repeated runs build identical
// buckets. Events the device could not attribute to an employee are
// skipped. A day without scans has no bucket at all.
func GroupByLocalDay(events []checkin.ScanEvent) map[BucketKey][]checkin.ScanEvent {
	sorted := make([]checkin.ScanEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	buckets := make(map[BucketKey][]checkin.ScanEvent)
	for _, ev := range sorted {
		if ev.EmployeeID == "" {
			continue
		}
		key := BucketKey{EmployeeID: ev.EmployeeID, Date: LocalDate(ev.Timestamp)}
		buckets[key] = append(buckets[key], ev)
	}
	return buckets
}
