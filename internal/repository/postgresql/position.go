package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/facetrack/attendance-backend-go/internal/domain/position"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type positionRepositoryImpl struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) position.PositionRepository {
	return &positionRepositoryImpl{db: db}
}

// Create implements position.PositionRepository.
func (r *positionRepositoryImpl) Create(ctx context.Context, p position.Position) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO positions (id, department_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, department_id, name, created_at, updated_at
	`

	var result position.Position
	err := q.QueryRow(ctx, query, uuid.NewString(), p.DepartmentID, p.Name).Scan(
		&result.ID,
		&result.DepartmentID,
		&result.Name,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return position.Position{}, fmt.Errorf("failed to create position: %w", err)
	}

	return result, nil
}

// GetByID implements position.PositionRepository.
func (r *positionRepositoryImpl) GetByID(ctx context.Context, id string) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, department_id, name, created_at, updated_at
		FROM positions
		WHERE id = $1
	`

	var result position.Position
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.DepartmentID,
		&result.Name,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.Position{}, position.ErrPositionNotFound
		}
		return position.Position{}, fmt.Errorf("failed to get position: %w", err)
	}

	return result, nil
}

// List implements position.PositionRepository.
func (r *positionRepositoryImpl) List(ctx context.Context) ([]position.Position, error) {
	query := `
		SELECT id, department_id, name, created_at, updated_at
		FROM positions
		ORDER BY name ASC
	`
	return r.list(ctx, query)
}

// ListByDepartment implements position.PositionRepository.
func (r *positionRepositoryImpl) ListByDepartment(ctx context.Context, departmentID string) ([]position.Position, error) {
	query := `
		SELECT id, department_id, name, created_at, updated_at
		FROM positions
		WHERE department_id = $1
		ORDER BY name ASC
	`
	return r.list(ctx, query, departmentID)
}

func (r *positionRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]position.Position, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var positions []position.Position
	for rows.Next() {
		var p position.Position
		err := rows.Scan(
			&p.ID,
			&p.DepartmentID,
			&p.Name,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return positions, nil
}

// Update implements position.PositionRepository.
func (r *positionRepositoryImpl) Update(ctx context.Context, p position.Position) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE positions
		SET name = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, p.Name, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update position: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return position.ErrPositionNotFound
	}

	return nil
}

// Delete implements position.PositionRepository.
func (r *positionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM positions WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return position.ErrPositionNotFound
	}

	return nil
}

// DeleteByDepartment implements position.PositionRepository.
func (r *positionRepositoryImpl) DeleteByDepartment(ctx context.Context, departmentID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM positions WHERE department_id = $1`

	if _, err := q.Exec(ctx, query, departmentID); err != nil {
		return fmt.Errorf("failed to delete positions: %w", err)
	}

	return nil
}
