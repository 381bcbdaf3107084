package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/duty"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type dutyRepositoryImpl struct {
	db *database.DB
}

func NewDutyRepository(db *database.DB) duty.DutyRepository {
	return &dutyRepositoryImpl{db: db}
}

const dutySelect = `
	SELECT d.id, d.assigned_by, d.assigned_to, d.title, d.description,
		   d.priority, d.due_date, d.status, d.created_at, d.updated_at,
		   TRIM(ae.first_name || ' ' || ae.last_name),
		   TRIM(ab.first_name || ' ' || ab.last_name)
	FROM delegated_duties d
	JOIN users ae ON ae.id = d.assigned_to
	LEFT JOIN users ab ON ab.id = d.assigned_by
`

func scanDuty(row pgx.Row) (duty.DelegatedDuty, error) {
	var d duty.DelegatedDuty
	err := row.Scan(
		&d.ID, &d.AssignedBy, &d.AssignedTo, &d.Title, &d.Description,
		&d.Priority, &d.DueDate, &d.Status, &d.CreatedAt, &d.UpdatedAt,
		&d.AssigneeFullName, &d.AssignerFullName,
	)
	return d, err
}

func collectDuties(rows pgx.Rows) ([]duty.DelegatedDuty, error) {
	var duties []duty.DelegatedDuty
	for rows.Next() {
		d, err := scanDuty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan duty: %w", err)
		}
		duties = append(duties, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate duties: %w", err)
	}
	return duties, nil
}

// Create implements duty.DutyRepository.
func (r *dutyRepositoryImpl) Create(ctx context.Context, d duty.DelegatedDuty) (duty.DelegatedDuty, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO delegated_duties (assigned_by, assigned_to, title, description, priority, due_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		d.AssignedBy, d.AssignedTo, d.Title, d.Description, d.Priority, d.DueDate, d.Status,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return duty.DelegatedDuty{}, fmt.Errorf("failed to create duty: %w", err)
	}

	return d, nil
}

// GetByID implements duty.DutyRepository.
func (r *dutyRepositoryImpl) GetByID(ctx context.Context, id string) (duty.DelegatedDuty, error) {
	q := GetQuerier(ctx, r.db)

	d, err := scanDuty(q.QueryRow(ctx, dutySelect+` WHERE d.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return duty.DelegatedDuty{}, duty.ErrDutyNotFound
		}
		return duty.DelegatedDuty{}, fmt.Errorf("failed to get duty: %w", err)
	}
	return d, nil
}

// UpdateStatus implements duty.DutyRepository.
func (r *dutyRepositoryImpl) UpdateStatus(ctx context.Context, id string, status string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE delegated_duties SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update duty status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return duty.ErrDutyNotFound
	}
	return nil
}

// ListByAssignee implements duty.DutyRepository.
func (r *dutyRepositoryImpl) ListByAssignee(ctx context.Context, userID string) ([]duty.DelegatedDuty, error) {
	q := GetQuerier(ctx, r.db)

	query := dutySelect + ` WHERE d.assigned_to = $1 ORDER BY d.due_date ASC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list duties: %w", err)
	}
	defer rows.Close()

	return collectDuties(rows)
}

// ListAll implements duty.DutyRepository.
func (r *dutyRepositoryImpl) ListAll(ctx context.Context) ([]duty.DelegatedDuty, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, dutySelect+` ORDER BY d.due_date ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list all duties: %w", err)
	}
	defer rows.Close()

	return collectDuties(rows)
}

// MarkOverdue implements duty.DutyRepository.
func (r *dutyRepositoryImpl) MarkOverdue(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE delegated_duties
		SET status = $1, updated_at = NOW()
		WHERE due_date < $2
		  AND status NOT IN ($1, $3)
	`

	tag, err := q.Exec(ctx, query, duty.StatusOverdue, cutoff, duty.StatusCompleted)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue duties: %w", err)
	}
	return tag.RowsAffected(), nil
}
