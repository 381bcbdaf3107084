package leave

import "time"

// Request types. Suggestion-box entries travel through the same table but
// carry no date range.
const (
	TypeLeave      = "Leave"
	TypeSuggestion = "Suggestion_box"
	TypeRemoteWork = "Remote Work"
)

// Request statuses.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// LeaveRequest is a staff member's leave / remote-work / suggestion entry.
// Status moves Pending -> Approved or Pending -> Rejected exactly once, by
// an admin.
type LeaveRequest struct {
	ID          string
	UserID      string
	Type        string
	StartDate   *time.Time
	EndDate     *time.Time
	Reason      string
	Status      string
	ReviewedBy  *string
	ReviewNotes string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	UserFullName     *string
	ReviewerFullName *string
}

// Duration returns the leave length in days, inclusive of both endpoints.
// Zero when either date is missing (suggestions carry no range).
func (l *LeaveRequest) Duration() int {
	if l.StartDate == nil || l.EndDate == nil {
		return 0
	}
	return int(l.EndDate.Sub(*l.StartDate).Hours()/24) + 1
}

// IsPending reports whether the request still awaits review.
func (l *LeaveRequest) IsPending() bool {
	return l.Status == StatusPending
}

// IsApproved reports whether the request was approved.
func (l *LeaveRequest) IsApproved() bool {
	return l.Status == StatusApproved
}
