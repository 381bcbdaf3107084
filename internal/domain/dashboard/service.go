package dashboard

import "context"

// DashboardService defines dashboard aggregation operations.
type DashboardService interface {
	// GetSummary returns the caller's dashboard blocks, fanning the aggregate
	// queries out concurrently. Admin callers additionally get the
	// organisation-wide extras.
	GetSummary(ctx context.Context) (SummaryResponse, error)

	// GetChart returns the per-date attendance series for one of the four
	// chart ranges. Admin only.
	GetChart(ctx context.Context, rangeSelector string) (ChartResponse, error)
}
