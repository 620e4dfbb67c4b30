package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/facetrack/attendance-backend-go/internal/domain/department"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, name, created_at, updated_at
	`

	var result department.Department
	err := q.QueryRow(ctx, query, uuid.NewString(), dept.Name).Scan(
		&result.ID,
		&result.Name,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return result, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM departments
		WHERE id = $1
	`

	var result department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	return result, nil
}

// GetByName implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByName(ctx context.Context, name string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM departments
		WHERE name = $1
	`

	var result department.Department
	err := q.QueryRow(ctx, query, name).Scan(
		&result.ID,
		&result.Name,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	return result, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.created_at, d.updated_at, COUNT(p.id) AS position_count
		FROM departments d
		LEFT JOIN positions p ON p.department_id = d.id
		GROUP BY d.id, d.name, d.created_at, d.updated_at
		ORDER BY d.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		err := rows.Scan(
			&d.ID,
			&d.Name,
			&d.CreatedAt,
			&d.UpdatedAt,
			&d.PositionCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return departments, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, dept department.Department) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, dept.Name, dept.ID)
	if err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM departments WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}
