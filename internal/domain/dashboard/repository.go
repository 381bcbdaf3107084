package dashboard

import (
	"context"
	"time"
)

// MonthStats are the caller's aggregate counts for the current month.
type MonthStats struct {
	DaysWorked   int
	LateArrivals int
}

// DayCounts are organisation-wide attendance counts for one date.
type DayCounts struct {
	Date   time.Time
	Total  int
	Late   int
	OnTime int
}

// DashboardRepository defines the read-side aggregate queries backing the
// dashboard. Each method is a single SQL statement so the service can fan
// them out concurrently.
type DashboardRepository interface {
	// GetMonthStats returns the user's worked days and late arrivals for the
	// month containing the given date. Late means sign_in at or after the
	// threshold hour on that date.
	GetMonthStats(ctx context.Context, userID string, monthOf time.Time, lateThreshold time.Duration) (MonthStats, error)

	// CountPendingLeaves returns the number of leave requests awaiting review
	CountPendingLeaves(ctx context.Context) (int, error)

	// CountActiveEmployees returns distinct users with at least one
	// attendance record since the cutoff
	CountActiveEmployees(ctx context.Context, since time.Time) (int, error)

	// GetDayCounts returns total and late sign-ins for a single date
	GetDayCounts(ctx context.Context, date time.Time, lateThreshold time.Duration) (DayCounts, error)

	// GetRangeCounts returns per-date counts for each date in [start, end],
	// including dates with no records
	GetRangeCounts(ctx context.Context, start, end time.Time, lateThreshold time.Duration) ([]DayCounts, error)
}
