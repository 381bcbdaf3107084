package barcode

import (
	"testing"

	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

func TestGenerateFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := Generate()
		if !validator.IsValidBarcode(code) {
			t.Fatalf("Generate() = %q, not a valid barcode", code)
		}
		if seen[code] {
			t.Fatalf("Generate() produced duplicate %q", code)
		}
		seen[code] = true
	}
}

func TestQRPNG(t *testing.T) {
	png, err := QRPNG("STAFF-ABC123DEF456", 256)
	if err != nil {
		t.Fatalf("QRPNG returned error: %v", err)
	}
	if len(png) == 0 {
		t.Fatal("QRPNG returned empty image")
	}
	// PNG magic bytes
	if png[0] != 0x89 || string(png[1:4]) != "PNG" {
		t.Error("QRPNG output is not a PNG")
	}
}
