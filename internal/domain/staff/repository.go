package staff

import "context"

// ProfileRepository defines data access methods for staff profiles.
type ProfileRepository interface {
	// Create inserts a profile. The caller sets the barcode; the insert is
	// a no-op when a profile already exists for the user (at-most-once).
	Create(ctx context.Context, p Profile) (Profile, error)

	GetByUserID(ctx context.Context, userID string) (Profile, error)

	// GetByBarcode looks up a profile by exact barcode match
	GetByBarcode(ctx context.Context, code string) (Profile, error)
}
