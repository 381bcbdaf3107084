package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/dashboard"
	"github.com/stafftrack/attendance-backend-go/internal/domain/leave"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetMonthStats implements dashboard.DashboardRepository. Late means the
// sign-in timestamp is strictly past the threshold offset from that date's
// midnight, so signing in at the threshold exactly is on time.
func (r *dashboardRepositoryImpl) GetMonthStats(ctx context.Context, userID string, monthOf time.Time, lateThreshold time.Duration) (dashboard.MonthStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) FILTER (WHERE sign_in IS NOT NULL),
			   COUNT(*) FILTER (WHERE sign_in IS NOT NULL
					AND sign_in > date::timestamp + $1::interval)
		FROM attendances
		WHERE user_id = $2
		  AND date >= date_trunc('month', $3::date)
		  AND date < date_trunc('month', $3::date) + interval '1 month'
	`

	var stats dashboard.MonthStats
	err := q.QueryRow(ctx, query, lateThreshold.String(), userID, monthOf).
		Scan(&stats.DaysWorked, &stats.LateArrivals)
	if err != nil {
		return dashboard.MonthStats{}, fmt.Errorf("failed to get month stats: %w", err)
	}
	return stats, nil
}

// CountPendingLeaves implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountPendingLeaves(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1`, leave.StatusPending).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leaves: %w", err)
	}
	return count, nil
}

// CountActiveEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountActiveEmployees(ctx context.Context, since time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(DISTINCT user_id) FROM attendances WHERE date >= $1`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}
	return count, nil
}

// GetDayCounts implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetDayCounts(ctx context.Context, date time.Time, lateThreshold time.Duration) (dashboard.DayCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) FILTER (WHERE sign_in IS NOT NULL),
			   COUNT(*) FILTER (WHERE sign_in IS NOT NULL
					AND sign_in > date::timestamp + $1::interval)
		FROM attendances
		WHERE date = $2
	`

	counts := dashboard.DayCounts{Date: date}
	err := q.QueryRow(ctx, query, lateThreshold.String(), date).Scan(&counts.Total, &counts.Late)
	if err != nil {
		return dashboard.DayCounts{}, fmt.Errorf("failed to get day counts: %w", err)
	}
	counts.OnTime = counts.Total - counts.Late
	return counts, nil
}

// GetRangeCounts implements dashboard.DashboardRepository. The generate_series
// join fills dates without records with zero counts so chart series stay
// aligned with their labels.
func (r *dashboardRepositoryImpl) GetRangeCounts(ctx context.Context, start, end time.Time, lateThreshold time.Duration) ([]dashboard.DayCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.day::date,
			   COUNT(a.id) FILTER (WHERE a.sign_in IS NOT NULL),
			   COUNT(a.id) FILTER (WHERE a.sign_in IS NOT NULL
					AND a.sign_in > a.date::timestamp + $1::interval)
		FROM generate_series($2::date, $3::date, interval '1 day') AS s(day)
		LEFT JOIN attendances a ON a.date = s.day::date
		GROUP BY s.day
		ORDER BY s.day ASC
	`

	rows, err := q.Query(ctx, query, lateThreshold.String(), start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get range counts: %w", err)
	}
	defer rows.Close()

	var series []dashboard.DayCounts
	for rows.Next() {
		var c dashboard.DayCounts
		if err := rows.Scan(&c.Date, &c.Total, &c.Late); err != nil {
			return nil, fmt.Errorf("failed to scan day counts: %w", err)
		}
		c.OnTime = c.Total - c.Late
		series = append(series, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate day counts: %w", err)
	}

	return series, nil
}
