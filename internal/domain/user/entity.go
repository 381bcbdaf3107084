package user

import "time"

// User is an account that can sign in. IsAdmin is the administrative
// capability: admins see and act on all records, regular users only their
// own.
type User struct {
	ID           string
	Username     string
	Email        string
	FirstName    string
	LastName     string
	Phone        string
	PasswordHash string
	DepartmentID *string
	Position     string
	Bio          string
	HireDate     time.Time
	IsAdmin      bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	DepartmentName *string
}

// FullName returns "First Last", falling back to the username when no name
// parts are set.
func (u User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return u.Username
	}
}
