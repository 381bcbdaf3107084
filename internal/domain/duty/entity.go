package duty

import "time"

// Duty priorities.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
	PriorityUrgent = "URGENT"
)

// Duty statuses. Overdue is set by the hourly recomputation job for
// non-completed duties past their due date; assignees and admins may also
// set any status directly.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusOverdue    = "Overdue"
)

// DelegatedDuty is a task an admin assigns to a staff member. AssignedBy may
// be nil when the assigning admin account was deleted; AssignedTo is never
// nil.
type DelegatedDuty struct {
	ID          string
	AssignedBy  *string
	AssignedTo  string
	Title       string
	Description string
	Priority    string
	DueDate     time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	AssigneeFullName *string
	AssignerFullName *string
}

// IsOverdue reports whether the duty should be considered overdue at the
// given instant: past due and not completed.
func (d *DelegatedDuty) IsOverdue(now time.Time) bool {
	return d.Status != StatusCompleted && d.DueDate.Before(now)
}
