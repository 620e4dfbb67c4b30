package checkin

import (
	"context"
	"time"
)

// CheckinRepository is the event history collaborator. All list methods
// return events ordered ascending by timestamp, ties broken by insertion
// order so repeated reconciliation runs see the same sequence.
type CheckinRepository interface {
	// Create persists one scan event and returns the stored row
	Create(ctx context.Context, event ScanEvent) (ScanEvent, error)

	// ListByEmployeeID retrieves the full scan history of one employee
	ListByEmployeeID(ctx context.Context, employeeID string) ([]ScanEvent, error)

	// ListByEmployeeIDs retrieves scans of the given employees whose
	// timestamp falls in [from, to)
	ListByEmployeeIDs(ctx context.Context, employeeIDs []string, from, to time.Time) ([]ScanEvent, error)

	// ListBetween retrieves every scan whose timestamp falls in [from, to)
	ListBetween(ctx context.Context, from, to time.Time) ([]ScanEvent, error)
}
