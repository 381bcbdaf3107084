package leave

import (
	"context"
	"time"
)

// LeaveRepository defines data access methods for leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, l LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// UpdateReview records the review outcome
	UpdateReview(ctx context.Context, l LeaveRequest) error

	// ListByUser retrieves one user's requests, newest first
	ListByUser(ctx context.Context, userID string, limit int) ([]LeaveRequest, error)

	// ListAll retrieves every request, newest first (admin)
	ListAll(ctx context.Context, limit int) ([]LeaveRequest, error)

	// ListUpcoming retrieves a user's approved or pending requests ending on
	// or after the given date, soonest first
	ListUpcoming(ctx context.Context, userID string, from time.Time) ([]LeaveRequest, error)

	// ApprovedDaysInYear sums inclusive day counts of all approved requests
	// carrying a date range whose start date falls in the given year
	ApprovedDaysInYear(ctx context.Context, userID string, year int) (int, error)

	// CountByStatus counts requests with the given status across all users
	CountByStatus(ctx context.Context, status string) (int64, error)
}
