package todo

import "context"

// TodoService defines todo operations; every method is owner-scoped.
type TodoService interface {
	Create(ctx context.Context, req CreateTodoRequest) (TodoResponse, error)
	List(ctx context.Context) ([]TodoResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (TodoResponse, error)
	Delete(ctx context.Context, id string) error
}
