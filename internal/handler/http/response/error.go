package response

import (
	"errors"
	"net/http"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/auth"
	"github.com/stafftrack/attendance-backend-go/internal/domain/department"
	"github.com/stafftrack/attendance-backend-go/internal/domain/duty"
	"github.com/stafftrack/attendance-backend-go/internal/domain/leave"
	"github.com/stafftrack/attendance-backend-go/internal/domain/staff"
	"github.com/stafftrack/attendance-backend-go/internal/domain/todo"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/authz"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, authz.ErrUnauthenticated):
		Unauthorized(w, "Authentication required")

	// Users
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Administrative privilege required")

	// Departments
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrNameExists):
		Conflict(w, "Department name already exists")

	// Staff profiles
	case errors.Is(err, staff.ErrProfileNotFound):
		NotFound(w, "Staff profile not found")
	case errors.Is(err, staff.ErrInvalidBarcode):
		NotFound(w, "Invalid barcode")
	case errors.Is(err, staff.ErrProfileInactive):
		Forbidden(w, "Staff profile is inactive")

	// Attendance
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNotOwner):
		Forbidden(w, "You can only modify your own attendance records")
	case errors.Is(err, attendance.ErrAlreadySignedIn),
		errors.Is(err, attendance.ErrAlreadySignedOut),
		errors.Is(err, attendance.ErrNotSignedIn),
		errors.Is(err, attendance.ErrAlreadyCompleted),
		errors.Is(err, attendance.ErrInvalidAction):
		Conflict(w, err.Error())

	// Leave requests
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyReviewed):
		Conflict(w, "Leave request has already been reviewed")
	case errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, "Decision must be approve or reject", nil)

	// Todos
	case errors.Is(err, todo.ErrTodoNotFound):
		NotFound(w, "Todo not found")
	case errors.Is(err, todo.ErrInvalidTransition):
		Conflict(w, err.Error())

	// Delegated duties
	case errors.Is(err, duty.ErrDutyNotFound):
		NotFound(w, "Delegated duty not found")
	case errors.Is(err, duty.ErrNotAssignee):
		Forbidden(w, "Duty is not assigned to you")
	case errors.Is(err, duty.ErrInvalidStatus):
		BadRequest(w, "Invalid duty status", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
