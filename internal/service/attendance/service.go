package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/staff"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/authz"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/flash"
)

// One-shot status messages shown after a sign action.
const (
	msgSignedIn  = "You signed in successfully today. Welcome! we wish you a productive day ahead."
	msgSignedOut = "You signed out successfully. Goodbye!"
	msgInvalid   = "Invalid action or already signed in/out."
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	staffRepo staff.ProfileRepository
	flashes   *flash.Store
	now       func() time.Time
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, staffRepository staff.ProfileRepository, flashes *flash.Store) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		staffRepo:            staffRepository,
		flashes:              flashes,
		now:                  time.Now,
	}
}

func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// Sign implements attendance.AttendanceService. A failed transition still
// leaves a status message so the page can tell the user what happened.
func (s *AttendanceServiceImpl) Sign(ctx context.Context, req attendance.SignRequest) (attendance.AttendanceResponse, error) {
	id, decision := authz.FromContext(ctx)
	if !decision.Allowed {
		return attendance.AttendanceResponse{}, authz.ErrUnauthenticated
	}
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	record, err := s.AttendanceRepository.GetOrCreate(ctx, id.UserID, today(now))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := record.Apply(attendance.Action(req.Action), now); err != nil {
		s.flashes.Set(id.UserID, flash.Message{Text: msgInvalid})
		return attendance.AttendanceResponse{}, err
	}
	if req.Location != nil {
		record.Location = req.Location
	}

	if err := s.AttendanceRepository.UpdateSigns(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	msg := msgSignedIn
	if attendance.Action(req.Action) == attendance.ActionSignOut {
		msg = msgSignedOut
	}
	s.flashes.Set(id.UserID, flash.Message{Text: msg, SignTime: now.Format("15:04:05")})

	return toResponse(record), nil
}

// BarcodeAuthenticate implements attendance.AttendanceService. The action is
// inferred from the record's current state rather than taken from the
// request.
func (s *AttendanceServiceImpl) BarcodeAuthenticate(ctx context.Context, req attendance.BarcodeAuthRequest) (attendance.BarcodeAuthResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BarcodeAuthResponse{}, err
	}

	profile, err := s.staffRepo.GetByBarcode(ctx, req.Barcode)
	if err != nil {
		if errors.Is(err, staff.ErrProfileNotFound) {
			return attendance.BarcodeAuthResponse{}, staff.ErrInvalidBarcode
		}
		return attendance.BarcodeAuthResponse{}, err
	}
	if !profile.IsActive {
		return attendance.BarcodeAuthResponse{}, staff.ErrProfileInactive
	}

	now := s.now()
	record, err := s.AttendanceRepository.GetOrCreate(ctx, profile.UserID, today(now))
	if err != nil {
		return attendance.BarcodeAuthResponse{}, err
	}

	action, err := record.InferAction()
	if err != nil {
		return attendance.BarcodeAuthResponse{}, err
	}
	if err := record.Apply(action, now); err != nil {
		return attendance.BarcodeAuthResponse{}, err
	}
	if req.Location != nil {
		record.Location = req.Location
	}

	if err := s.AttendanceRepository.UpdateSigns(ctx, record); err != nil {
		return attendance.BarcodeAuthResponse{}, err
	}

	msg := msgSignedIn
	if action == attendance.ActionSignOut {
		msg = msgSignedOut
	}

	name := ""
	if profile.UserFullName != nil {
		name = *profile.UserFullName
	}

	return attendance.BarcodeAuthResponse{
		Success: true,
		Action:  string(action),
		Message: msg,
		Time:    now.Format("15:04:05"),
		User:    name,
	}, nil
}

// PopStatusMessage implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PopStatusMessage(ctx context.Context) (string, string, bool, error) {
	id, decision := authz.FromContext(ctx)
	if !decision.Allowed {
		return "", "", false, authz.ErrUnauthenticated
	}

	msg, ok := s.flashes.Pop(id.UserID)
	if !ok {
		return "", "", false, nil
	}
	return msg.Text, msg.SignTime, true, nil
}

// SaveNote implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SaveNote(ctx context.Context, req attendance.SaveNoteRequest) error {
	id, decision := authz.FromContext(ctx)
	if !decision.Allowed {
		return authz.ErrUnauthenticated
	}
	if err := req.Validate(); err != nil {
		return err
	}

	err := s.AttendanceRepository.UpdateNote(ctx, req.AttendanceID, id.UserID, req.Note)
	if errors.Is(err, attendance.ErrAttendanceNotFound) {
		// Distinguish someone else's record from a missing one
		if _, getErr := s.AttendanceRepository.GetByID(ctx, req.AttendanceID); getErr == nil {
			return attendance.ErrNotOwner
		}
	}
	return err
}

// GetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context) (*attendance.AttendanceResponse, error) {
	id, decision := authz.FromContext(ctx)
	if !decision.Allowed {
		return nil, authz.ErrUnauthenticated
	}

	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, id.UserID, today(s.now()))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	resp := toResponse(*record)
	return &resp, nil
}

// GetMyRecent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyRecent(ctx context.Context, limit int) ([]attendance.AttendanceResponse, error) {
	id, decision := authz.FromContext(ctx)
	if !decision.Allowed {
		return nil, authz.ErrUnauthenticated
	}
	if limit < 1 || limit > 100 {
		limit = 5
	}

	records, err := s.AttendanceRepository.GetRecent(ctx, id.UserID, limit)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	if _, decision := authz.RequireAdmin(ctx); !decision.Allowed {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("%s: %w", decision.Reason, user.ErrAdminPrivilegeRequired)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	records, total, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
		Attendances: toResponses(records),
	}, nil
}

// ExportRows implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ExportRows(ctx context.Context) ([]attendance.ExportRow, error) {
	if _, decision := authz.RequireAdmin(ctx); !decision.Allowed {
		return nil, fmt.Errorf("%s: %w", decision.Reason, user.ErrAdminPrivilegeRequired)
	}

	records, err := s.AttendanceRepository.GetAllForExport(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]attendance.ExportRow, 0, len(records))
	for _, r := range records {
		row := attendance.ExportRow{
			Date:  r.Date.Format("2006-01-02"),
			Notes: r.Notes,
		}
		if r.Username != nil {
			row.User = *r.Username
		}
		if r.SignIn != nil {
			row.SignIn = r.SignIn.Format("15:04:05")
		}
		if r.SignOut != nil {
			row.SignOut = r.SignOut.Format("15:04:05")
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func toResponse(a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:       a.ID,
		UserID:   a.UserID,
		Date:     a.Date.Format("2006-01-02"),
		Location: a.Location,
		Notes:    a.Notes,
	}
	if a.UserFullName != nil {
		resp.UserFullName = *a.UserFullName
	}
	if a.SignIn != nil {
		v := a.SignIn.Format("15:04:05")
		resp.SignIn = &v
	}
	if a.SignOut != nil {
		v := a.SignOut.Format("15:04:05")
		resp.SignOut = &v
	}
	if d, ok := a.Duration(); ok {
		v := attendance.FormatDuration(d, true)
		resp.Duration = &v
	}
	return resp
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	out := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toResponse(r))
	}
	return out
}
