package todo

import "context"

// TodoRepository defines data access methods for todo items.
type TodoRepository interface {
	Create(ctx context.Context, t TodoItem) (TodoItem, error)

	// GetByID retrieves an item owned by userID
	GetByID(ctx context.Context, id string, userID string) (TodoItem, error)

	Update(ctx context.Context, t TodoItem) error
	Delete(ctx context.Context, id string, userID string) error
	ListByUser(ctx context.Context, userID string) ([]TodoItem, error)
}
