package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("EMP001"))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	date, ok := IsValidDate("2025-03-03")
	assert.True(t, ok)
	assert.Equal(t, time.March, date.Month())

	_, ok = IsValidDate("03/03/2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	t.Parallel()

	ts, ok := IsValidDateTime("2025-03-03T08:15:00+07:00")
	assert.True(t, ok)
	assert.Equal(t, 8, ts.Hour())

	_, ok = IsValidDateTime("2025-03-03T08:15:00Z")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2025-03-03 08:15:00")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "employee_id", Message: "employee_id is required"},
		{Field: "shift", Message: "shift must be one of full_day, morning, afternoon"},
	}

	assert.Contains(t, errs.Error(), "employee_id")
	assert.Equal(t, "employee_id is required", errs.ToMap()["employee_id"])
}
