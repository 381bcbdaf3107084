package staff

import "errors"

// Staff domain errors
var (
	ErrProfileNotFound = errors.New("staff profile not found")
	ErrInvalidBarcode  = errors.New("invalid barcode")
	ErrProfileInactive = errors.New("staff account is inactive")
)
