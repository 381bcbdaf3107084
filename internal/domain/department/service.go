package department

import "context"

// DepartmentService defines department operations.
type DepartmentService interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	List(ctx context.Context) ([]DepartmentResponse, error)

	// SeedDefaults creates the standard department set if missing.
	// Idempotent: existing names are skipped.
	SeedDefaults(ctx context.Context) (created int, err error)
}
