package todo

import "github.com/stafftrack/attendance-backend-go/internal/pkg/validator"

type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r *CreateTodoRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if len(r.Title) > 200 {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title must be at most 200 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	TodoID string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{StatusOngoing, StatusDone}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be ONGOING or DONE",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TodoResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status"`
	StartedAt   *string `json:"started_at"`
	CompletedAt *string `json:"completed_at"`
	CreatedAt   string  `json:"created_at"`
}
