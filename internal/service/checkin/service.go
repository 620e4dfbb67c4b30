package checkin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/checkin"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/pkg/sse"
	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
	reportsvc "github.com/facetrack/attendance-backend-go/internal/service/report"
)

type CheckinService interface {
	// RecordScan stores one scan event submitted over HTTP, used for manual
	// corrections when a terminal missed a swipe
	RecordScan(ctx context.Context, req checkin.RecordScanRequest) (checkin.ScanEventResponse, error)

	// HandleDeviceEvent stores one raw scan payload from the ingestion
	// channel. Events for unknown faces are kept unattributed for audit.
	HandleDeviceEvent(ctx context.Context, req checkin.DeviceEventRequest) error

	// TodayFeed returns one row per employee who scanned today, joined with
	// roster details, ordered by first scan
	TodayFeed(ctx context.Context) ([]checkin.TodayScanResponse, error)
}

type CheckinServiceImpl struct {
	checkinRepo  checkin.CheckinRepository
	employeeRepo employee.EmployeeRepository
	hub          *sse.Hub
	logger       *slog.Logger
	now          func() time.Time
}

func NewCheckinService(
	checkinRepo checkin.CheckinRepository,
	employeeRepo employee.EmployeeRepository,
	hub *sse.Hub,
	logger *slog.Logger,
) *CheckinServiceImpl {
	return &CheckinServiceImpl{
		checkinRepo:  checkinRepo,
		employeeRepo: employeeRepo,
		hub:          hub,
		logger:       logger,
		now:          time.Now,
	}
}

var _ CheckinService = (*CheckinServiceImpl)(nil)

func (s *CheckinServiceImpl) RecordScan(ctx context.Context, req checkin.RecordScanRequest) (checkin.ScanEventResponse, error) {
	if err := req.Validate(); err != nil {
		return checkin.ScanEventResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		return checkin.ScanEventResponse{}, err
	}

	ts := s.now().UTC()
	if req.Timestamp != "" {
		parsed, _ := validator.IsValidDateTime(req.Timestamp)
		ts = parsed.UTC()
	}

	created, err := s.checkinRepo.Create(ctx, checkin.ScanEvent{
		DeviceID:   req.DeviceID,
		EmployeeID: req.EmployeeID,
		Timestamp:  ts,
		StatusHint: req.StatusHint,
	})
	if err != nil {
		return checkin.ScanEventResponse{}, fmt.Errorf("failed to store scan event: %w", err)
	}

	resp := toEventResponse(created)
	s.hub.Publish(sse.Event{Event: "checkin", Data: resp})
	return resp, nil
}

func (s *CheckinServiceImpl) HandleDeviceEvent(ctx context.Context, req checkin.DeviceEventRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	ts := s.now().UTC()
	if req.Timestamp != "" {
		// device clocks are not always set; Validate already checked the format
		parsed, _ := validator.IsValidDateTime(req.Timestamp)
		ts = parsed.UTC()
	}

	employeeID := req.EmployeeID
	if employeeID != "" {
		_, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			s.logger.Warn("scan for unregistered employee kept unattributed",
				"device_id", req.DeviceID,
				"employee_id", employeeID)
			employeeID = ""
		} else if err != nil {
			return fmt.Errorf("failed to look up employee: %w", err)
		}
	}

	created, err := s.checkinRepo.Create(ctx, checkin.ScanEvent{
		DeviceID:   req.DeviceID,
		EmployeeID: employeeID,
		Timestamp:  ts,
		StatusHint: req.Status,
		FaceID:     req.FaceBase64,
	})
	if err != nil {
		return fmt.Errorf("failed to store scan event: %w", err)
	}

	if employeeID != "" {
		s.hub.Publish(sse.Event{Event: "checkin", Data: toEventResponse(created)})
	}
	return nil
}

func (s *CheckinServiceImpl) TodayFeed(ctx context.Context) ([]checkin.TodayScanResponse, error) {
	local := s.now().In(reportsvc.BusinessZone)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, reportsvc.BusinessZone)
	dayEnd := dayStart.AddDate(0, 0, 1)

	events, err := s.checkinRepo.ListBetween(ctx, dayStart.UTC(), dayEnd.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to load scan events: %w", err)
	}

	emps, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	roster := make(map[string]employee.Employee, len(emps))
	for _, emp := range emps {
		roster[emp.EmployeeID] = emp
	}

	// first scan per employee, in scan order
	seen := make(map[string]bool)
	feed := make([]checkin.TodayScanResponse, 0)
	for _, ev := range events {
		if ev.EmployeeID == "" || seen[ev.EmployeeID] {
			continue
		}
		emp, ok := roster[ev.EmployeeID]
		if !ok {
			continue
		}
		seen[ev.EmployeeID] = true

		row := checkin.TodayScanResponse{
			ID:         ev.ID,
			EmployeeID: ev.EmployeeID,
			FullName:   emp.FullName,
			CheckIn:    ev.Timestamp.In(reportsvc.BusinessZone).Format("15:04:05"),
		}
		if emp.DepartmentName != nil {
			row.Department = *emp.DepartmentName
		}
		if emp.PositionName != nil {
			row.Position = *emp.PositionName
		}
		if emp.FaceImage != nil {
			row.FaceImage = *emp.FaceImage
		}
		feed = append(feed, row)
	}
	return feed, nil
}

func toEventResponse(ev checkin.ScanEvent) checkin.ScanEventResponse {
	return checkin.ScanEventResponse{
		ID:         ev.ID,
		DeviceID:   ev.DeviceID,
		EmployeeID: ev.EmployeeID,
		Timestamp:  ev.Timestamp.UTC().Format(time.RFC3339),
		StatusHint: ev.StatusHint,
	}
}
