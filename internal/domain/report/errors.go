package report

import "errors"

// Reconciliation errors
var (
	// ErrUnclassifiedShift marks an employee whose shift value is not in the
	// known set. The employee is excluded from lateness/overtime verdicts,
	// never treated as zero.
	ErrUnclassifiedShift = errors.New("shift is not a recognized value")

	ErrInvalidDateRange = errors.New("invalid date range")
)
