package attendance

import "time"

// Action is a sign request kind.
type Action string

const (
	ActionSignIn  Action = "sign_in"
	ActionSignOut Action = "sign_out"
)

// Attendance is one user's record for one calendar date. At most one record
// exists per (user, date); it is mutated at most twice (sign-in, then
// sign-out) and never deleted.
type Attendance struct {
	ID        string
	UserID    string
	Date      time.Time
	SignIn    *time.Time
	SignOut   *time.Time
	Location  *string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	UserFullName *string
	Username     *string
}

// IsSignedIn reports whether the user is currently signed in (signed in but
// not out).
func (a *Attendance) IsSignedIn() bool {
	return a.SignIn != nil && a.SignOut == nil
}

// Duration returns the time between sign-in and sign-out, or false when
// either is unset.
func (a *Attendance) Duration() (time.Duration, bool) {
	if a.SignIn == nil || a.SignOut == nil {
		return 0, false
	}
	return a.SignOut.Sub(*a.SignIn), true
}

// InferAction decides the sign action for a barcode scan from the record's
// current state: no sign-in yet means sign in, an open session means sign
// out, a completed record refuses further scans.
func (a *Attendance) InferAction() (Action, error) {
	switch {
	case a.SignIn == nil:
		return ActionSignIn, nil
	case a.SignOut == nil:
		return ActionSignOut, nil
	default:
		return "", ErrAlreadyCompleted
	}
}

// Apply performs the requested sign action at the given instant. It mutates
// the record only when the transition is valid; invalid actions leave the
// record untouched and return a state-conflict error.
func (a *Attendance) Apply(action Action, now time.Time) error {
	switch action {
	case ActionSignIn:
		if a.SignIn != nil {
			return ErrAlreadySignedIn
		}
		a.SignIn = &now
		return nil
	case ActionSignOut:
		if a.SignIn == nil {
			return ErrNotSignedIn
		}
		if a.SignOut != nil {
			return ErrAlreadySignedOut
		}
		a.SignOut = &now
		return nil
	default:
		return ErrInvalidAction
	}
}
