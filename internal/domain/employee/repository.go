package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for the roster.
// The reconciliation engine only reads through List/ListByDepartment/
// GetByEmployeeID; the write methods serve the CRUD and device
// registration surfaces.
type EmployeeRepository interface {
	// Create inserts a new employee and returns the stored row
	Create(ctx context.Context, emp Employee) (Employee, error)

	// Update replaces the mutable fields of an existing employee
	Update(ctx context.Context, emp Employee) error

	// Delete removes an employee by external employee id
	Delete(ctx context.Context, employeeID string) error

	// GetByEmployeeID retrieves one employee by external employee id,
	// with department and position names resolved
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)

	// List retrieves every employee ordered by employee id,
	// with department and position names resolved
	List(ctx context.Context) ([]Employee, error)

	// ListByDepartment retrieves employees of one department ordered by
	// employee id, with department and position names resolved
	ListByDepartment(ctx context.Context, departmentID string) ([]Employee, error)

	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
}
