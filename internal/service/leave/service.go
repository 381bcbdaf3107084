package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/leave"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/authz"
)

const defaultListLimit = 100

type LeaveServiceImpl struct {
	leave.LeaveRepository
	now func() time.Time
}

func NewLeaveService(leaveRepository leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepository,
		now:             time.Now,
	}
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitRequest) (leave.LeaveResponse, error) {
	id, decision := authz.FromContext(ctx)
	if !decision.Allowed {
		return leave.LeaveResponse{}, authz.ErrUnauthenticated
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	request := leave.LeaveRequest{
		UserID: id.UserID,
		Type:   req.Type,
		Reason: req.Reason,
		Status: leave.StatusPending,
	}
	if req.StartDate != nil && *req.StartDate != "" {
		start, _ := time.Parse("2006-01-02", *req.StartDate)
		request.StartDate = &start
	}
	if req.EndDate != nil && *req.EndDate != "" {
		end, _ := time.Parse("2006-01-02", *req.EndDate)
		request.EndDate = &end
	}

	created, err := s.LeaveRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(created), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context) ([]leave.LeaveResponse, error) {
	id, decision := authz.FromContext(ctx)
	if !decision.Allowed {
		return nil, authz.ErrUnauthenticated
	}

	var requests []leave.LeaveRequest
	var err error
	if id.IsAdmin {
		requests, err = s.LeaveRepository.ListAll(ctx, defaultListLimit)
	} else {
		requests, err = s.LeaveRepository.ListByUser(ctx, id.UserID, defaultListLimit)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, toResponse(r))
	}
	return responses, nil
}

// Review implements leave.LeaveService. The repository refuses the update
// when the request is no longer pending, so two racing admins cannot both
// win.
func (s *LeaveServiceImpl) Review(ctx context.Context, req leave.ReviewRequest) (leave.LeaveResponse, error) {
	admin, decision := authz.RequireAdmin(ctx)
	if !decision.Allowed {
		return leave.LeaveResponse{}, fmt.Errorf("%s: %w", decision.Reason, user.ErrAdminPrivilegeRequired)
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	request, err := s.LeaveRepository.GetByID(ctx, req.LeaveID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !request.IsPending() {
		return leave.LeaveResponse{}, leave.ErrAlreadyReviewed
	}

	request.Status = leave.StatusApproved
	if req.Decision == leave.DecisionReject {
		request.Status = leave.StatusRejected
	}
	request.ReviewedBy = &admin.UserID
	request.ReviewNotes = req.ReviewNotes

	if err := s.LeaveRepository.UpdateReview(ctx, request); err != nil {
		return leave.LeaveResponse{}, err
	}

	updated, err := s.LeaveRepository.GetByID(ctx, req.LeaveID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return toResponse(updated), nil
}

func toResponse(l leave.LeaveRequest) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:          l.ID,
		UserID:      l.UserID,
		Type:        l.Type,
		Reason:      l.Reason,
		Status:      l.Status,
		ReviewNotes: l.ReviewNotes,
		Days:        l.Duration(),
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
	}
	if l.UserFullName != nil {
		resp.UserFullName = *l.UserFullName
	}
	if l.StartDate != nil {
		v := l.StartDate.Format("2006-01-02")
		resp.StartDate = &v
	}
	if l.EndDate != nil {
		v := l.EndDate.Format("2006-01-02")
		resp.EndDate = &v
	}
	if l.ReviewerFullName != nil {
		resp.ReviewedBy = l.ReviewerFullName
	}
	return resp
}
