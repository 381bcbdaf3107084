package todo

import (
	"context"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/todo"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/authz"
)

type TodoServiceImpl struct {
	todo.TodoRepository
	now func() time.Time
}

func NewTodoService(todoRepository todo.TodoRepository) todo.TodoService {
	return &TodoServiceImpl{
		TodoRepository: todoRepository,
		now:            time.Now,
	}
}

// Create implements todo.TodoService.
func (s *TodoServiceImpl) Create(ctx context.Context, req todo.CreateTodoRequest) (todo.TodoResponse, error) {
	id, decision := authz.FromContext(ctx)
	if !decision.Allowed {
		return todo.TodoResponse{}, authz.ErrUnauthenticated
	}
	if err := req.Validate(); err != nil {
		return todo.TodoResponse{}, err
	}

	created, err := s.TodoRepository.Create(ctx, todo.TodoItem{
		UserID:      id.UserID,
		Title:       req.Title,
		Description: req.Description,
		Status:      todo.StatusTodo,
	})
	if err != nil {
		return todo.TodoResponse{}, err
	}

	return toResponse(created), nil
}

// List implements todo.TodoService.
func (s *TodoServiceImpl) List(ctx context.Context) ([]todo.TodoResponse, error) {
	id, decision := authz.FromContext(ctx)
	if !decision.Allowed {
		return nil, authz.ErrUnauthenticated
	}

	items, err := s.TodoRepository.ListByUser(ctx, id.UserID)
	if err != nil {
		return nil, err
	}

	responses := make([]todo.TodoResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toResponse(item))
	}
	return responses, nil
}

// UpdateStatus implements todo.TodoService.
func (s *TodoServiceImpl) UpdateStatus(ctx context.Context, req todo.UpdateStatusRequest) (todo.TodoResponse, error) {
	id, decision := authz.FromContext(ctx)
	if !decision.Allowed {
		return todo.TodoResponse{}, authz.ErrUnauthenticated
	}
	if err := req.Validate(); err != nil {
		return todo.TodoResponse{}, err
	}

	item, err := s.TodoRepository.GetByID(ctx, req.TodoID, id.UserID)
	if err != nil {
		return todo.TodoResponse{}, err
	}

	if err := item.Transition(req.Status, s.now()); err != nil {
		return todo.TodoResponse{}, err
	}

	if err := s.TodoRepository.Update(ctx, item); err != nil {
		return todo.TodoResponse{}, err
	}

	return toResponse(item), nil
}

// Delete implements todo.TodoService.
func (s *TodoServiceImpl) Delete(ctx context.Context, id string) error {
	caller, decision := authz.FromContext(ctx)
	if !decision.Allowed {
		return authz.ErrUnauthenticated
	}
	return s.TodoRepository.Delete(ctx, id, caller.UserID)
}

func toResponse(t todo.TodoItem) todo.TodoResponse {
	resp := todo.TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
	if t.StartedAt != nil {
		v := t.StartedAt.Format(time.RFC3339)
		resp.StartedAt = &v
	}
	if t.CompletedAt != nil {
		v := t.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &v
	}
	return resp
}
