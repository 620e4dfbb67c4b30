package report

import "context"

// ReportService exposes the five reconciliation queries. Every method is a
// pure function of the stored scan history, the roster and "now"; safe to
// call concurrently and to retry freely.
type ReportService interface {
	// LateToday lists employees whose first scan of the day came after
	// their shift's late threshold
	LateToday(ctx context.Context, req SnapshotRequest) (SnapshotReport, error)

	// EarlyLeaveToday lists employees whose last scan of the day came
	// before their shift's end boundary
	EarlyLeaveToday(ctx context.Context, req SnapshotRequest) (SnapshotReport, error)

	// OvertimeToday lists employees whose last scan of the day came after
	// their shift's end boundary
	OvertimeToday(ctx context.Context, req SnapshotRequest) (SnapshotReport, error)

	// MonthlyStatistics aggregates one employee's month into counters,
	// hour totals, average scan times and an attendance rate
	MonthlyStatistics(ctx context.Context, req MonthlyRequest) (MonthlyStatisticsResponse, error)

	// History returns the full calendar of daily records for one
	// employee/month, weekends and future days included
	History(ctx context.Context, req MonthlyRequest) (HistoryResponse, error)
}
