package barcode

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// Generate returns a new staff barcode of the form STAFF-<12 uppercase hex>.
// The value is the sole scanning credential, so it is generated once and
// never regenerated for an existing profile.
func Generate() string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return fmt.Sprintf("STAFF-%s", hex[:12])
}

// QRPNG renders the barcode value as a QR code PNG for display on the
// "my barcode" page.
func QRPNG(code string, size int) ([]byte, error) {
	png, err := qrcode.Encode(code, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode barcode QR: %w", err)
	}
	return png, nil
}
