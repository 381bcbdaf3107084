package duty

import (
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

type CreateDutyRequest struct {
	AssignedTo  string `json:"assigned_to"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"` // YYYY-MM-DD
}

func (r *CreateDutyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AssignedTo) {
		errs = append(errs, validator.ValidationError{Field: "assigned_to", Message: "assigned_to is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if !validator.IsInSlice(r.Priority, []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be LOW, MEDIUM, HIGH or URGENT",
		})
	}
	if _, ok := validator.IsValidDate(r.DueDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "due_date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDutyStatusRequest struct {
	DutyID string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateDutyStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{StatusPending, StatusInProgress, StatusCompleted, StatusOverdue}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Pending, In Progress, Completed or Overdue",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DutyResponse struct {
	ID               string  `json:"id"`
	AssignedTo       string  `json:"assigned_to"`
	AssigneeFullName string  `json:"assignee_full_name,omitempty"`
	AssignedBy       *string `json:"assigned_by"`
	AssignerFullName *string `json:"assigner_full_name,omitempty"`
	Title            string  `json:"title"`
	Description      string  `json:"description,omitempty"`
	Priority         string  `json:"priority"`
	DueDate          string  `json:"due_date"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"created_at"`
}
