package report

import (
	"testing"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/checkin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByLocalDayUTCBoundary(t *testing.T) {
	t.Parallel()

	// 23:30 UTC is 06:30 the next day in UTC+7
	ts := time.Date(2025, 3, 3, 23, 30, 0, 0, time.UTC)
	buckets := GroupByLocalDay([]checkin.ScanEvent{
		{EmployeeID: "EMP001", Timestamp: ts},
	})

	require.Len(t, buckets, 1)
	assert.Contains(t, buckets, BucketKey{EmployeeID: "EMP001", Date: "2025-03-04"})
	assert.NotContains(t, buckets, BucketKey{EmployeeID: "EMP001", Date: "2025-03-03"})
}

func TestGroupByLocalDayOrdersAscending(t *testing.T) {
	t.Parallel()

	events := []checkin.ScanEvent{
		{ID: "late", EmployeeID: "EMP001", Timestamp: at(2025, 3, 3, 17, 45)},
		{ID: "early", EmployeeID: "EMP001", Timestamp: at(2025, 3, 3, 8, 15)},
		{ID: "mid", EmployeeID: "EMP001", Timestamp: at(2025, 3, 3, 12, 0)},
	}

	buckets := GroupByLocalDay(events)
	bucket := buckets[BucketKey{EmployeeID: "EMP001", Date: "2025-03-03"}]

	require.Len(t, bucket, 3)
	assert.Equal(t, "early", bucket[0].ID)
	assert.Equal(t, "mid", bucket[1].ID)
	assert.Equal(t, "late", bucket[2].ID)
}

func TestGroupByLocalDayStableOnTies(t *testing.T) {
	t.Parallel()

	ts := at(2025, 3, 3, 8, 0)
	events := []checkin.ScanEvent{
		{ID: "first", EmployeeID: "EMP001", Timestamp: ts},
		{ID: "second", EmployeeID: "EMP001", Timestamp: ts},
	}

	bucket := GroupByLocalDay(events)[BucketKey{EmployeeID: "EMP001", Date: "2025-03-03"}]
	require.Len(t, bucket, 2)
	assert.Equal(t, "first", bucket[0].ID)
	assert.Equal(t, "second", bucket[1].ID)
}

func TestGroupByLocalDaySkipsUnresolvedFaces(t *testing.T) {
	t.Parallel()

	events := []checkin.ScanEvent{
		{ID: "ghost", EmployeeID: "", Timestamp: at(2025, 3, 3, 8, 0)},
		{ID: "known", EmployeeID: "EMP001", Timestamp: at(2025, 3, 3, 8, 5)},
	}

	buckets := GroupByLocalDay(events)
	require.Len(t, buckets, 1)
	bucket := buckets[BucketKey{EmployeeID: "EMP001", Date: "2025-03-03"}]
	require.Len(t, bucket, 1)
	assert.Equal(t, "known", bucket[0].ID)
}

func TestGroupByLocalDaySplitsEmployees(t *testing.T) {
	t.Parallel()

	events := []checkin.ScanEvent{
		{EmployeeID: "EMP001", Timestamp: at(2025, 3, 3, 8, 0)},
		{EmployeeID: "EMP002", Timestamp: at(2025, 3, 3, 8, 0)},
		{EmployeeID: "EMP001", Timestamp: at(2025, 3, 4, 8, 0)},
	}

	buckets := GroupByLocalDay(events)
	assert.Len(t, buckets, 3)
	assert.Len(t, buckets[BucketKey{"EMP001", "2025-03-03"}], 1)
	assert.Len(t, buckets[BucketKey{"EMP002", "2025-03-03"}], 1)
	assert.Len(t, buckets[BucketKey{"EMP001", "2025-03-04"}], 1)
}

func TestGroupByLocalDayEmptyInput(t *testing.T) {
	t.Parallel()

	buckets := GroupByLocalDay(nil)
	assert.Empty(t, buckets)
}
