package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// GetOrCreate returns the record for (userID, date), creating an empty
	// one when none exists. The insert relies on the unique (user_id, date)
	// constraint so concurrent first calls converge on one row.
	GetOrCreate(ctx context.Context, userID string, date time.Time) (Attendance, error)

	// GetByUserAndDate retrieves the record for a specific user and date;
	// nil when none exists
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// UpdateSigns persists sign_in/sign_out/location changes
	UpdateSigns(ctx context.Context, a Attendance) error

	// UpdateNote sets the note on a record owned by userID
	UpdateNote(ctx context.Context, id string, userID string, note string) error

	// List retrieves records with filters and pagination (admin view)
	List(ctx context.Context, filter ListFilter) ([]Attendance, int64, error)

	// GetRecent retrieves the latest records for one user
	GetRecent(ctx context.Context, userID string, limit int) ([]Attendance, error)

	// GetAllForExport retrieves every record ordered by date descending
	GetAllForExport(ctx context.Context) ([]Attendance, error)
}
