package attendance

import "errors"

// Attendance domain errors
var (
	// Sign action state conflicts: refused without mutating, not faults
	ErrAlreadySignedIn  = errors.New("you have already signed in today")
	ErrNotSignedIn      = errors.New("you have not signed in yet")
	ErrAlreadySignedOut = errors.New("you have already signed out today")
	ErrAlreadyCompleted = errors.New("you have already completed sign in/out for today")
	ErrInvalidAction    = errors.New("invalid action or already signed in/out")

	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNotOwner           = errors.New("attendance record does not belong to you")
)
