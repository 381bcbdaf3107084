package duty

import (
	"context"
	"time"
)

// DutyRepository defines data access methods for delegated duties.
type DutyRepository interface {
	Create(ctx context.Context, d DelegatedDuty) (DelegatedDuty, error)
	GetByID(ctx context.Context, id string) (DelegatedDuty, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	ListByAssignee(ctx context.Context, userID string) ([]DelegatedDuty, error)
	ListAll(ctx context.Context) ([]DelegatedDuty, error)

	// MarkOverdue flips non-completed duties past the cutoff to Overdue and
	// returns how many rows changed
	MarkOverdue(ctx context.Context, cutoff time.Time) (int64, error)
}
