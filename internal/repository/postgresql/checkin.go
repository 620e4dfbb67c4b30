package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/checkin"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type checkinRepositoryImpl struct {
	db *database.DB
}

func NewCheckinRepository(db *database.DB) checkin.CheckinRepository {
	return &checkinRepositoryImpl{db: db}
}

// Create implements checkin.CheckinRepository.
func (r *checkinRepositoryImpl) Create(ctx context.Context, event checkin.ScanEvent) (checkin.ScanEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO scan_events (id, device_id, employee_id, ts, face_id, status_hint, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, device_id, employee_id, ts, face_id, status_hint, created_at
	`

	var result checkin.ScanEvent
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		event.DeviceID,
		event.EmployeeID,
		event.Timestamp,
		event.FaceID,
		event.StatusHint,
	).Scan(
		&result.ID,
		&result.DeviceID,
		&result.EmployeeID,
		&result.Timestamp,
		&result.FaceID,
		&result.StatusHint,
		&result.CreatedAt,
	)

	if err != nil {
		return checkin.ScanEvent{}, fmt.Errorf("failed to create scan event: %w", err)
	}

	return result, nil
}

// scan order is timestamp first, then seq: seq is a bigserial that breaks
// timestamp ties by insertion order, which the reconciliation engine
// depends on for deterministic first/last selection.
const scanEventOrder = ` ORDER BY ts ASC, seq ASC`

// ListByEmployeeID implements checkin.CheckinRepository.
func (r *checkinRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]checkin.ScanEvent, error) {
	query := `
		SELECT id, device_id, employee_id, ts, face_id, status_hint, created_at
		FROM scan_events
		WHERE employee_id = $1` + scanEventOrder
	return r.list(ctx, query, employeeID)
}

// ListByEmployeeIDs implements checkin.CheckinRepository.
func (r *checkinRepositoryImpl) ListByEmployeeIDs(ctx context.Context, employeeIDs []string, from, to time.Time) ([]checkin.ScanEvent, error) {
	query := `
		SELECT id, device_id, employee_id, ts, face_id, status_hint, created_at
		FROM scan_events
		WHERE employee_id = ANY($1) AND ts >= $2 AND ts < $3` + scanEventOrder
	return r.list(ctx, query, employeeIDs, from, to)
}

// ListBetween implements checkin.CheckinRepository.
func (r *checkinRepositoryImpl) ListBetween(ctx context.Context, from, to time.Time) ([]checkin.ScanEvent, error) {
	query := `
		SELECT id, device_id, employee_id, ts, face_id, status_hint, created_at
		FROM scan_events
		WHERE ts >= $1 AND ts < $2` + scanEventOrder
	return r.list(ctx, query, from, to)
}

func (r *checkinRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]checkin.ScanEvent, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scan events: %w", err)
	}
	defer rows.Close()

	var events []checkin.ScanEvent
	for rows.Next() {
		var e checkin.ScanEvent
		err := rows.Scan(
			&e.ID,
			&e.DeviceID,
			&e.EmployeeID,
			&e.Timestamp,
			&e.FaceID,
			&e.StatusHint,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return events, nil
}
