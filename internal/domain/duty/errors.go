package duty

import "errors"

// Duty domain errors
var (
	ErrDutyNotFound  = errors.New("delegated duty not found")
	ErrNotAssignee   = errors.New("duty is not assigned to you")
	ErrInvalidStatus = errors.New("invalid duty status")
)
