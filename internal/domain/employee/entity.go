package employee

import (
	"time"
)

// Shift is the named work schedule assigned to an employee. The recognized
// values drive the reconciliation boundaries; anything else is unclassified
// and excluded from lateness/overtime computation.
type Shift string

const (
	ShiftFullDay   Shift = "full_day"
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
)

// Known reports whether s is one of the recognized shift values.
func (s Shift) Known() bool {
	switch s {
	case ShiftFullDay, ShiftMorning, ShiftAfternoon:
		return true
	}
	return false
}

type Employee struct {
	ID               string
	EmployeeID       string // stable external identifier used by the scan devices
	FullName         string
	Email            *string
	Phone            *string
	Shift            Shift
	DepartmentID     *string
	PositionID       *string
	FaceImage        *string
	RegistrationDate *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO
	DepartmentName *string
	PositionName   *string
}
