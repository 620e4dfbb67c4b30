package report

import (
	"testing"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundariesFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		shift employee.Shift
		late  TimeOfDay
		early TimeOfDay
	}{
		{"full day", employee.ShiftFullDay, TimeOfDay{8, 0}, TimeOfDay{17, 0}},
		{"morning", employee.ShiftMorning, TimeOfDay{8, 0}, TimeOfDay{12, 0}},
		{"afternoon", employee.ShiftAfternoon, TimeOfDay{13, 0}, TimeOfDay{17, 0}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := BoundariesFor(tt.shift)
			require.NoError(t, err)
			assert.Equal(t, tt.late, b.LateThreshold)
			assert.Equal(t, tt.early, b.EarlyThreshold)
		})
	}
}

func TestBoundariesForUnknownShift(t *testing.T) {
	t.Parallel()

	_, err := BoundariesFor(employee.Shift("graveyard"))
	require.ErrorIs(t, err, report.ErrUnclassifiedShift)
}

func TestTimeOfDayAt(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 3, 3, 0, 0, 0, 0, BusinessZone)
	anchored := TimeOfDay{8, 0}.At(date)

	assert.Equal(t, "2025-03-03 08:00", anchored.In(BusinessZone).Format("2006-01-02 15:04"))
	// 08:00 in UTC+7 is 01:00 UTC
	assert.Equal(t, "01:00", anchored.UTC().Format("15:04"))
}
