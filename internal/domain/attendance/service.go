package attendance

import "context"

// AttendanceService defines business logic for sign-in/out tracking.
type AttendanceService interface {
	// Sign processes an explicit sign_in/sign_out action for the
	// authenticated user
	Sign(ctx context.Context, req SignRequest) (AttendanceResponse, error)

	// BarcodeAuthenticate resolves a scanned barcode to a staff identity and
	// applies the inferred sign action
	BarcodeAuthenticate(ctx context.Context, req BarcodeAuthRequest) (BarcodeAuthResponse, error)

	// PopStatusMessage returns and clears the one-shot status message left by
	// the last sign action
	PopStatusMessage(ctx context.Context) (string, string, bool, error)

	// SaveNote attaches a note to one of the caller's own records
	SaveNote(ctx context.Context, req SaveNoteRequest) error

	// GetToday returns the caller's record for today, nil when none exists
	GetToday(ctx context.Context) (*AttendanceResponse, error)

	// GetMyRecent retrieves the caller's latest records
	GetMyRecent(ctx context.Context, limit int) ([]AttendanceResponse, error)

	// List retrieves attendance records with filters (admin)
	List(ctx context.Context, filter ListFilter) (ListAttendanceResponse, error)

	// ExportRows returns all records flattened for document export (admin)
	ExportRows(ctx context.Context) ([]ExportRow, error)
}
