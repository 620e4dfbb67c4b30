package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.employee_id, e.full_name, e.email, e.phone, e.shift,
	e.department_id, e.position_id, e.face_image, e.registration_date,
	e.created_at, e.updated_at,
	d.name AS department_name, p.name AS position_name
`

const employeeJoins = `
	FROM employees e
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN positions p ON p.id = e.position_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.EmployeeID,
		&e.FullName,
		&e.Email,
		&e.Phone,
		&e.Shift,
		&e.DepartmentID,
		&e.PositionID,
		&e.FaceImage,
		&e.RegistrationDate,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.DepartmentName,
		&e.PositionName,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, employee_id, full_name, email, phone, shift,
			department_id, position_id, face_image, registration_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, employee_id, full_name, email, phone, shift,
			department_id, position_id, face_image, registration_date, created_at, updated_at
	`

	var result employee.Employee
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		emp.EmployeeID,
		emp.FullName,
		emp.Email,
		emp.Phone,
		emp.Shift,
		emp.DepartmentID,
		emp.PositionID,
		emp.FaceImage,
		emp.RegistrationDate,
	).Scan(
		&result.ID,
		&result.EmployeeID,
		&result.FullName,
		&result.Email,
		&result.Phone,
		&result.Shift,
		&result.DepartmentID,
		&result.PositionID,
		&result.FaceImage,
		&result.RegistrationDate,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return result, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $1, email = $2, phone = $3, shift = $4,
			department_id = $5, position_id = $6, face_image = $7, updated_at = NOW()
		WHERE employee_id = $8
	`

	commandTag, err := q.Exec(ctx, query,
		emp.FullName,
		emp.Email,
		emp.Phone,
		emp.Shift,
		emp.DepartmentID,
		emp.PositionID,
		emp.FaceImage,
		emp.EmployeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employees WHERE employee_id = $1`

	commandTag, err := q.Exec(ctx, query, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + ` WHERE e.employee_id = $1`

	result, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return result, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + employeeJoins + ` ORDER BY e.employee_id ASC`
	return r.list(ctx, query)
}

// ListByDepartment implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByDepartment(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + employeeJoins + ` WHERE e.department_id = $1 ORDER BY e.employee_id ASC`
	return r.list(ctx, query, departmentID)
}

func (r *employeeRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// ExistsByEmployeeID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}

	return exists, nil
}
