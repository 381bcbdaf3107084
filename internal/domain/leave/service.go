package leave

import "context"

// LeaveService defines leave request operations.
type LeaveService interface {
	// Submit files a request for the authenticated user
	Submit(ctx context.Context, req SubmitRequest) (LeaveResponse, error)

	// List returns the caller's requests, or everyone's when the caller has
	// administrative capability
	List(ctx context.Context) ([]LeaveResponse, error)

	// Review resolves a pending request. Admin only; an already-resolved
	// request is refused with ErrAlreadyReviewed.
	Review(ctx context.Context, req ReviewRequest) (LeaveResponse, error)
}
