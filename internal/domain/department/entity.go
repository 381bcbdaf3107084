package department

import "time"

// Department categorizes staff members.
type Department struct {
	ID          string
	Name        string
	Description string
	Slug        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
