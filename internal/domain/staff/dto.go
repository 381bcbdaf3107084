package staff

// BarcodeResponse carries a user's scanning credential for the
// "my barcode" page. The QR image is served separately as PNG.
type BarcodeResponse struct {
	Barcode  string `json:"barcode"`
	FullName string `json:"full_name"`
	Position string `json:"position,omitempty"`
}
