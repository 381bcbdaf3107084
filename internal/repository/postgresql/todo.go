package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/todo"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type todoRepositoryImpl struct {
	db *database.DB
}

func NewTodoRepository(db *database.DB) todo.TodoRepository {
	return &todoRepositoryImpl{db: db}
}

const todoColumns = `id, user_id, title, description, status, started_at, completed_at, created_at, updated_at`

func scanTodo(row pgx.Row) (todo.TodoItem, error) {
	var t todo.TodoItem
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Status,
		&t.StartedAt, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Create implements todo.TodoRepository.
func (r *todoRepositoryImpl) Create(ctx context.Context, t todo.TodoItem) (todo.TodoItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO todo_items (user_id, title, description, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, t.UserID, t.Title, t.Description, t.Status).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return todo.TodoItem{}, fmt.Errorf("failed to create todo: %w", err)
	}

	return t, nil
}

// GetByID implements todo.TodoRepository. The user filter scopes lookups to
// the owner.
func (r *todoRepositoryImpl) GetByID(ctx context.Context, id string, userID string) (todo.TodoItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + todoColumns + ` FROM todo_items WHERE id = $1 AND user_id = $2`

	t, err := scanTodo(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return todo.TodoItem{}, todo.ErrTodoNotFound
		}
		return todo.TodoItem{}, fmt.Errorf("failed to get todo: %w", err)
	}
	return t, nil
}

// Update implements todo.TodoRepository.
func (r *todoRepositoryImpl) Update(ctx context.Context, t todo.TodoItem) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE todo_items
		SET title = $1, description = $2, status = $3, started_at = $4, completed_at = $5, updated_at = NOW()
		WHERE id = $6 AND user_id = $7
	`

	tag, err := q.Exec(ctx, query, t.Title, t.Description, t.Status, t.StartedAt, t.CompletedAt, t.ID, t.UserID)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return todo.ErrTodoNotFound
	}
	return nil
}

// Delete implements todo.TodoRepository.
func (r *todoRepositoryImpl) Delete(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM todo_items WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return todo.ErrTodoNotFound
	}
	return nil
}

// ListByUser implements todo.TodoRepository.
func (r *todoRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]todo.TodoItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + todoColumns + ` FROM todo_items WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	var items []todo.TodoItem
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate todos: %w", err)
	}

	return items, nil
}
