package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrAlreadyReviewed      = errors.New("leave request has already been approved or rejected")
	ErrInvalidDecision      = errors.New("decision must be approve or reject")
)
