package staff

import "time"

// Profile extends a user with staff attributes. Exactly one profile exists
// per user; the barcode is generated once and immutable after first save.
type Profile struct {
	ID           string
	UserID       string
	DepartmentID *string
	Phone        string
	Position     string
	Bio          string
	HireDate     time.Time
	IsActive     bool
	Barcode      string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	UserFullName   *string
	DepartmentName *string
}
