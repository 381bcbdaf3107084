package department

import "context"

// DepartmentRepository defines data access methods for departments.
type DepartmentRepository interface {
	// Create inserts a department; the slug must already be set
	Create(ctx context.Context, d Department) (Department, error)

	GetByID(ctx context.Context, id string) (Department, error)
	GetByName(ctx context.Context, name string) (Department, error)
	List(ctx context.Context) ([]Department, error)
}
