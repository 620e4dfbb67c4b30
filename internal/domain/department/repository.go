package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)

	// GetByID retrieves a department by id
	GetByID(ctx context.Context, id string) (Department, error)

	GetByName(ctx context.Context, name string) (Department, error)

	// List retrieves all departments with their position counts
	List(ctx context.Context) ([]Department, error)

	Update(ctx context.Context, dept Department) error

	// Delete removes the department; associated positions are removed by the
	// caller inside the same transaction
	Delete(ctx context.Context, id string) error
}
