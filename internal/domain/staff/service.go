package staff

import "context"

// StaffService exposes the caller's scanning credential.
type StaffService interface {
	// GetMyBarcode returns the caller's barcode value and display fields
	GetMyBarcode(ctx context.Context) (BarcodeResponse, error)

	// GetMyBarcodePNG renders the caller's barcode as a QR code image
	GetMyBarcodePNG(ctx context.Context, size int) ([]byte, error)
}
