package leave

import (
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	Type      string  `json:"type"`
	StartDate *string `json:"start_date"` // YYYY-MM-DD
	EndDate   *string `json:"end_date"`   // YYYY-MM-DD
	Reason    string  `json:"reason"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, []string{TypeLeave, TypeSuggestion, TypeRemoteWork}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be Leave, Suggestion_box or Remote Work",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	var start, end time.Time
	var startOK, endOK bool
	if r.StartDate != nil && *r.StartDate != "" {
		if start, startOK = validator.IsValidDate(*r.StartDate); !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be YYYY-MM-DD",
			})
		}
	}
	if r.EndDate != nil && *r.EndDate != "" {
		if end, endOK = validator.IsValidDate(*r.EndDate); !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be YYYY-MM-DD",
			})
		}
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	// Dates are optional only for suggestion-box entries
	if r.Type == TypeLeave || r.Type == TypeRemoteWork {
		if !startOK || !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date and end_date are required for this request type",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Decision values for review.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

type ReviewRequest struct {
	LeaveID     string `json:"-"`
	Decision    string `json:"decision"`
	ReviewNotes string `json:"review_notes"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Decision != DecisionApprove && r.Decision != DecisionReject {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be approve or reject",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	UserFullName string  `json:"user_full_name,omitempty"`
	Type         string  `json:"type"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	ReviewedBy   *string `json:"reviewed_by,omitempty"`
	ReviewNotes  string  `json:"review_notes,omitempty"`
	Days         int     `json:"days"`
	CreatedAt    string  `json:"created_at"`
}
