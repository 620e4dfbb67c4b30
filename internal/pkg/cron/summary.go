package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/report"
	"github.com/facetrack/attendance-backend-go/internal/pkg/sse"
	reportsvc "github.com/facetrack/attendance-backend-go/internal/service/report"
)

// SummaryJobs pushes an end-of-day attendance digest to connected viewers.
type SummaryJobs struct {
	reportSvc report.ReportService
	hub       *sse.Hub
}

func NewSummaryJobs(reportSvc report.ReportService, hub *sse.Hub) *SummaryJobs {
	return &SummaryJobs{
		reportSvc: reportSvc,
		hub:       hub,
	}
}

func (j *SummaryJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("daily_attendance_summary", 1*time.Hour, j.PublishDailySummary)
}

// PublishDailySummary broadcasts today's late/early-leave/overtime counts.
// Gated to the 17:00 hour in the business timezone, the end of the full-day
// shift, so it fires once per day.
func (j *SummaryJobs) PublishDailySummary(ctx context.Context) error {
	if time.Now().In(reportsvc.BusinessZone).Hour() != 17 {
		return nil
	}

	late, err := j.reportSvc.LateToday(ctx, report.SnapshotRequest{})
	if err != nil {
		return err
	}
	early, err := j.reportSvc.EarlyLeaveToday(ctx, report.SnapshotRequest{})
	if err != nil {
		return err
	}
	overtime, err := j.reportSvc.OvertimeToday(ctx, report.SnapshotRequest{})
	if err != nil {
		return err
	}

	j.hub.Publish(sse.Event{
		Event: "daily_summary",
		Data: map[string]interface{}{
			"date":              late.Date,
			"total_employees":   late.TotalEmployees,
			"late_count":        late.MatchedCount,
			"early_leave_count": early.MatchedCount,
			"overtime_count":    overtime.MatchedCount,
		},
	})

	slog.Info("daily attendance summary published",
		"date", late.Date,
		"late", late.MatchedCount,
		"early_leave", early.MatchedCount,
		"overtime", overtime.MatchedCount)
	return nil
}
