package attendance

import (
	"fmt"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

type SignRequest struct {
	Action   string  `json:"action"`
	Location *string `json:"location"`
}

func (r *SignRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Action != string(ActionSignIn) && r.Action != string(ActionSignOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be sign_in or sign_out",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BarcodeAuthRequest struct {
	Barcode  string  `json:"barcode"`
	Location *string `json:"location"`
}

func (r *BarcodeAuthRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Barcode) {
		errs = append(errs, validator.ValidationError{
			Field:   "barcode",
			Message: "no barcode provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BarcodeAuthResponse mirrors what the scan page displays after a scan.
type BarcodeAuthResponse struct {
	Success bool   `json:"success"`
	Action  string `json:"action"`
	Message string `json:"message"`
	Time    string `json:"time"` // HH:MM:SS
	User    string `json:"user"`
}

type SaveNoteRequest struct {
	AttendanceID string `json:"attendance_id"`
	Note         string `json:"note"`
}

func (r *SaveNoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows the admin attendance list.
type ListFilter struct {
	Username *string
	Date     *string // YYYY-MM-DD
	Page     int
	Limit    int
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	UserFullName string  `json:"user_full_name"`
	Date         string  `json:"date"`
	SignIn       *string `json:"sign_in"`
	SignOut      *string `json:"sign_out"`
	Location     *string `json:"location,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	Duration     *string `json:"duration,omitempty"` // H:MM
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}

// ExportRow is one line of the attendance export, matching the columns of
// the CSV/Excel/PDF documents.
type ExportRow struct {
	User    string
	Date    string
	SignIn  string
	SignOut string
	Notes   string
}

// FormatDuration renders a duration as "H:MM" the way the dashboard lists
// recent attendance; "--:--" when incomplete.
func FormatDuration(d time.Duration, ok bool) string {
	if !ok {
		return "--:--"
	}
	totalSeconds := int(d.Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	return fmt.Sprintf("%d:%02d", hours, minutes)
}
