package duty

import "context"

// DutyService defines delegated duty operations.
type DutyService interface {
	// Create assigns a duty to a staff member. Admin only.
	Create(ctx context.Context, req CreateDutyRequest) (DutyResponse, error)

	// List returns duties assigned to the caller, or all duties for admins
	List(ctx context.Context) ([]DutyResponse, error)

	// UpdateStatus sets a duty's status; allowed for the assignee or an admin
	UpdateStatus(ctx context.Context, req UpdateDutyStatusRequest) (DutyResponse, error)
}
