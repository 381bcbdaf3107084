package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/leave"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveSelect = `
	SELECT l.id, l.user_id, l.type, l.start_date, l.end_date, l.reason,
		   l.status, l.reviewed_by, l.review_notes, l.created_at, l.updated_at,
		   TRIM(u.first_name || ' ' || u.last_name),
		   TRIM(r.first_name || ' ' || r.last_name)
	FROM leave_requests l
	JOIN users u ON u.id = l.user_id
	LEFT JOIN users r ON r.id = l.reviewed_by
`

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(
		&l.ID, &l.UserID, &l.Type, &l.StartDate, &l.EndDate, &l.Reason,
		&l.Status, &l.ReviewedBy, &l.ReviewNotes, &l.CreatedAt, &l.UpdatedAt,
		&l.UserFullName, &l.ReviewerFullName,
	)
	return l, err
}

func collectLeaves(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}
	return requests, nil
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (user_id, type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.UserID, l.Type, l.StartDate, l.EndDate, l.Reason, l.Status,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return l, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanLeave(q.QueryRow(ctx, leaveSelect+` WHERE l.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return l, nil
}

// UpdateReview implements leave.LeaveRepository. The status guard keeps the
// review a one-time transition even when two admins race.
func (r *leaveRepositoryImpl) UpdateReview(ctx context.Context, l leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, reviewed_by = $2, review_notes = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
	`

	tag, err := q.Exec(ctx, query, l.Status, l.ReviewedBy, l.ReviewNotes, l.ID, leave.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to update leave review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrAlreadyReviewed
	}
	return nil
}

// ListByUser implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByUser(ctx context.Context, userID string, limit int) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := leaveSelect + ` WHERE l.user_id = $1 ORDER BY l.created_at DESC LIMIT $2`

	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// ListAll implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListAll(ctx context.Context, limit int) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := leaveSelect + ` ORDER BY l.created_at DESC LIMIT $1`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list all leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// ListUpcoming implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListUpcoming(ctx context.Context, userID string, from time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := leaveSelect + `
		WHERE l.user_id = $1
		  AND l.status IN ($2, $3)
		  AND l.end_date >= $4
		ORDER BY l.start_date ASC
	`

	rows, err := q.Query(ctx, query, userID, leave.StatusApproved, leave.StatusPending, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming leave: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// ApprovedDaysInYear implements leave.LeaveRepository. Every approved
// request with a date range counts against the balance, remote work
// included; the NULL guards skip suggestion entries, which carry no dates.
func (r *leaveRepositoryImpl) ApprovedDaysInYear(ctx context.Context, userID string, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(end_date - start_date + 1), 0)
		FROM leave_requests
		WHERE user_id = $1
		  AND status = $2
		  AND start_date IS NOT NULL
		  AND end_date IS NOT NULL
		  AND EXTRACT(YEAR FROM start_date) = $3
	`

	var days int
	err := q.QueryRow(ctx, query, userID, leave.StatusApproved, year).Scan(&days)
	if err != nil {
		return 0, fmt.Errorf("failed to sum approved leave days: %w", err)
	}
	return days, nil
}

// CountByStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) CountByStatus(ctx context.Context, status string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count leave requests: %w", err)
	}
	return count, nil
}
