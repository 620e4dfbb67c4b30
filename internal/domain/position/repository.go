package position

import "context"

type PositionRepository interface {
	Create(ctx context.Context, p Position) (Position, error)
	GetByID(ctx context.Context, id string) (Position, error)
	List(ctx context.Context) ([]Position, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]Position, error)
	Update(ctx context.Context, p Position) error
	Delete(ctx context.Context, id string) error

	// DeleteByDepartment removes every position of a department, used when
	// the department itself is deleted
	DeleteByDepartment(ctx context.Context, departmentID string) error
}
