package duty

import (
	"context"
	"fmt"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/duty"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/authz"
)

type DutyServiceImpl struct {
	duty.DutyRepository
	userRepo user.UserRepository
}

func NewDutyService(dutyRepository duty.DutyRepository, userRepository user.UserRepository) duty.DutyService {
	return &DutyServiceImpl{
		DutyRepository: dutyRepository,
		userRepo:       userRepository,
	}
}

// Create implements duty.DutyService.
func (s *DutyServiceImpl) Create(ctx context.Context, req duty.CreateDutyRequest) (duty.DutyResponse, error) {
	admin, decision := authz.RequireAdmin(ctx)
	if !decision.Allowed {
		return duty.DutyResponse{}, fmt.Errorf("%s: %w", decision.Reason, user.ErrAdminPrivilegeRequired)
	}
	if err := req.Validate(); err != nil {
		return duty.DutyResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.AssignedTo); err != nil {
		return duty.DutyResponse{}, err
	}

	dueDate, _ := time.Parse("2006-01-02", req.DueDate)

	created, err := s.DutyRepository.Create(ctx, duty.DelegatedDuty{
		AssignedBy:  &admin.UserID,
		AssignedTo:  req.AssignedTo,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     dueDate,
		Status:      duty.StatusPending,
	})
	if err != nil {
		return duty.DutyResponse{}, err
	}

	return toResponse(created), nil
}

// List implements duty.DutyService.
func (s *DutyServiceImpl) List(ctx context.Context) ([]duty.DutyResponse, error) {
	id, decision := authz.FromContext(ctx)
	if !decision.Allowed {
		return nil, authz.ErrUnauthenticated
	}

	var duties []duty.DelegatedDuty
	var err error
	if id.IsAdmin {
		duties, err = s.DutyRepository.ListAll(ctx)
	} else {
		duties, err = s.DutyRepository.ListByAssignee(ctx, id.UserID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]duty.DutyResponse, 0, len(duties))
	for _, d := range duties {
		responses = append(responses, toResponse(d))
	}
	return responses, nil
}

// UpdateStatus implements duty.DutyService. The assignee and any admin may
// change the status; everyone else is refused.
func (s *DutyServiceImpl) UpdateStatus(ctx context.Context, req duty.UpdateDutyStatusRequest) (duty.DutyResponse, error) {
	id, decision := authz.FromContext(ctx)
	if !decision.Allowed {
		return duty.DutyResponse{}, authz.ErrUnauthenticated
	}
	if err := req.Validate(); err != nil {
		return duty.DutyResponse{}, err
	}

	d, err := s.DutyRepository.GetByID(ctx, req.DutyID)
	if err != nil {
		return duty.DutyResponse{}, err
	}
	if d.AssignedTo != id.UserID && !id.IsAdmin {
		return duty.DutyResponse{}, duty.ErrNotAssignee
	}

	if err := s.DutyRepository.UpdateStatus(ctx, d.ID, req.Status); err != nil {
		return duty.DutyResponse{}, err
	}
	d.Status = req.Status

	return toResponse(d), nil
}

func toResponse(d duty.DelegatedDuty) duty.DutyResponse {
	resp := duty.DutyResponse{
		ID:          d.ID,
		AssignedTo:  d.AssignedTo,
		AssignedBy:  d.AssignedBy,
		Title:       d.Title,
		Description: d.Description,
		Priority:    d.Priority,
		DueDate:     d.DueDate.Format("2006-01-02"),
		Status:      d.Status,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
	}
	if d.AssigneeFullName != nil {
		resp.AssigneeFullName = *d.AssigneeFullName
	}
	resp.AssignerFullName = d.AssignerFullName
	return resp
}
