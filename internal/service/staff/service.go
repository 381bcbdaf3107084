package staff

import (
	"context"

	"github.com/stafftrack/attendance-backend-go/internal/domain/staff"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/authz"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/barcode"
)

type StaffServiceImpl struct {
	staff.ProfileRepository
}

func NewStaffService(profileRepository staff.ProfileRepository) staff.StaffService {
	return &StaffServiceImpl{ProfileRepository: profileRepository}
}

// GetMyBarcode implements staff.StaffService.
func (s *StaffServiceImpl) GetMyBarcode(ctx context.Context) (staff.BarcodeResponse, error) {
	id, decision := authz.FromContext(ctx)
	if !decision.Allowed {
		return staff.BarcodeResponse{}, authz.ErrUnauthenticated
	}

	profile, err := s.ProfileRepository.GetByUserID(ctx, id.UserID)
	if err != nil {
		return staff.BarcodeResponse{}, err
	}

	resp := staff.BarcodeResponse{
		Barcode:  profile.Barcode,
		Position: profile.Position,
	}
	if profile.UserFullName != nil {
		resp.FullName = *profile.UserFullName
	}
	return resp, nil
}

// GetMyBarcodePNG implements staff.StaffService.
func (s *StaffServiceImpl) GetMyBarcodePNG(ctx context.Context, size int) ([]byte, error) {
	id, decision := authz.FromContext(ctx)
	if !decision.Allowed {
		return nil, authz.ErrUnauthenticated
	}

	profile, err := s.ProfileRepository.GetByUserID(ctx, id.UserID)
	if err != nil {
		return nil, err
	}

	if size < 64 || size > 1024 {
		size = 256
	}
	return barcode.QRPNG(profile.Barcode, size)
}
