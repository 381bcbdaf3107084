package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/dashboard"
	"github.com/stafftrack/attendance-backend-go/internal/domain/leave"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/authz"
)

// Aggregation constants. A month counts as 22 working days; everyone gets
// 20 vacation days per calendar year; an employee is active when they have
// signed in within the trailing 30 days.
const (
	workingDaysPerMonth = 22
	vacationDaysPerYear = 20
	activeWindowDays    = 30
	lateThreshold       = 9 * time.Hour
	recentLimit         = 5
	adminRecentLeaves   = 10
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	now            func() time.Time
}

func NewDashboardService(dashboardRepository dashboard.DashboardRepository, attendanceRepository attendance.AttendanceRepository, leaveRepository leave.LeaveRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: dashboardRepository,
		attendanceRepo:      attendanceRepository,
		leaveRepo:           leaveRepository,
		now:                 time.Now,
	}
}

// GetSummary implements dashboard.DashboardService. Every block is read by
// its own query; the errgroup fans them out and the first failure cancels
// the rest.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context) (dashboard.SummaryResponse, error) {
	id, decision := authz.FromContext(ctx)
	if !decision.Allowed {
		return dashboard.SummaryResponse{}, authz.ErrUnauthenticated
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var (
		monthStats dashboard.MonthStats
		approved   int
		recent     []attendance.Attendance
		leaves     []leave.LeaveRequest
		upcoming   []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		monthStats, err = s.DashboardRepository.GetMonthStats(gCtx, id.UserID, today, lateThreshold)
		return err
	})
	g.Go(func() error {
		var err error
		approved, err = s.leaveRepo.ApprovedDaysInYear(gCtx, id.UserID, now.Year())
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.attendanceRepo.GetRecent(gCtx, id.UserID, recentLimit)
		return err
	})
	g.Go(func() error {
		// Admins see recent requests across all staff
		var err error
		if id.IsAdmin {
			leaves, err = s.leaveRepo.ListAll(gCtx, adminRecentLeaves)
		} else {
			leaves, err = s.leaveRepo.ListByUser(gCtx, id.UserID, recentLimit)
		}
		return err
	})
	g.Go(func() error {
		var err error
		upcoming, err = s.leaveRepo.ListUpcoming(gCtx, id.UserID, today)
		return err
	})

	var admin *dashboard.AdminExtras
	if id.IsAdmin {
		admin = &dashboard.AdminExtras{}
		g.Go(func() error {
			pending, err := s.DashboardRepository.CountPendingLeaves(gCtx)
			if err != nil {
				return err
			}
			admin.PendingLeaveRequests = pending
			return nil
		})
		g.Go(func() error {
			active, err := s.DashboardRepository.CountActiveEmployees(gCtx, today.AddDate(0, 0, -activeWindowDays))
			if err != nil {
				return err
			}
			admin.ActiveEmployees = active
			return nil
		})
		g.Go(func() error {
			counts, err := s.DashboardRepository.GetDayCounts(gCtx, today, lateThreshold)
			if err != nil {
				return err
			}
			admin.OnTimePercentToday = onTimePercent(counts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to aggregate dashboard: %w", err)
	}

	resp := dashboard.SummaryResponse{
		DaysWorked:        monthStats.DaysWorked,
		DaysWorkedPercent: daysWorkedPercent(monthStats.DaysWorked),
		LateArrivals:      monthStats.LateArrivals,
		VacationDaysLeft:  vacationDaysLeft(approved),
		RecentAttendance:  toRecentAttendance(recent),
		RecentLeaves:      toRecentLeaves(leaves),
		UpcomingTimeOff:   toUpcomingTimeOff(upcoming),
		Admin:             admin,
	}
	return resp, nil
}

// GetChart implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetChart(ctx context.Context, rangeSelector string) (dashboard.ChartResponse, error) {
	if _, decision := authz.RequireAdmin(ctx); !decision.Allowed {
		return dashboard.ChartResponse{}, fmt.Errorf("%s: %w", decision.Reason, user.ErrAdminPrivilegeRequired)
	}

	start, end, err := dashboard.RangeBounds(rangeSelector, s.now())
	if err != nil {
		return dashboard.ChartResponse{}, err
	}

	counts, err := s.DashboardRepository.GetRangeCounts(ctx, start, end, lateThreshold)
	if err != nil {
		return dashboard.ChartResponse{}, err
	}

	resp := dashboard.ChartResponse{Range: rangeSelector}
	for _, c := range counts {
		resp.Labels = append(resp.Labels, c.Date.Format("2006-01-02"))
		resp.Series.OnTime = append(resp.Series.OnTime, c.OnTime)
		resp.Series.Late = append(resp.Series.Late, c.Late)
		resp.Series.Total = append(resp.Series.Total, c.Total)
	}
	return resp, nil
}

func daysWorkedPercent(daysWorked int) int {
	percent := int(math.Round(float64(daysWorked) / workingDaysPerMonth * 100))
	if percent > 100 {
		percent = 100
	}
	return percent
}

func vacationDaysLeft(approvedDays int) int {
	left := vacationDaysPerYear - approvedDays
	if left < 0 {
		left = 0
	}
	return left
}

func onTimePercent(c dashboard.DayCounts) int {
	if c.Total == 0 {
		return 0
	}
	return c.OnTime * 100 / c.Total
}

func toRecentAttendance(records []attendance.Attendance) []dashboard.RecentAttendanceItem {
	items := make([]dashboard.RecentAttendanceItem, 0, len(records))
	for _, r := range records {
		item := dashboard.RecentAttendanceItem{
			Date: r.Date.Format("2006-01-02"),
		}
		if r.SignIn != nil {
			item.SignIn = r.SignIn.Format("15:04:05")
			// Strictly after the threshold; signing in at 09:00:00 sharp is
			// still on time
			threshold := r.Date.Add(lateThreshold)
			item.Late = r.SignIn.After(threshold)
		}
		if r.SignOut != nil {
			item.SignOut = r.SignOut.Format("15:04:05")
		}
		d, ok := r.Duration()
		item.Duration = attendance.FormatDuration(d, ok)
		items = append(items, item)
	}
	return items
}

func toRecentLeaves(requests []leave.LeaveRequest) []dashboard.RecentLeaveItem {
	items := make([]dashboard.RecentLeaveItem, 0, len(requests))
	for _, l := range requests {
		item := dashboard.RecentLeaveItem{
			ID:     l.ID,
			Type:   l.Type,
			Status: l.Status,
		}
		if l.StartDate != nil {
			item.StartDate = l.StartDate.Format("2006-01-02")
		}
		if l.EndDate != nil {
			item.EndDate = l.EndDate.Format("2006-01-02")
		}
		items = append(items, item)
	}
	return items
}

func toUpcomingTimeOff(requests []leave.LeaveRequest) []dashboard.UpcomingTimeOffItem {
	items := make([]dashboard.UpcomingTimeOffItem, 0, len(requests))
	for _, l := range requests {
		if l.StartDate == nil || l.EndDate == nil {
			continue
		}
		items = append(items, dashboard.UpcomingTimeOffItem{
			Type:      l.Type,
			StartDate: l.StartDate.Format("2006-01-02"),
			EndDate:   l.EndDate.Format("2006-01-02"),
			Duration:  l.Duration(),
		})
	}
	return items
}
