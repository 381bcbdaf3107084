package postgresql_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/attendance-backend-go/internal/domain/leave"
	"github.com/stafftrack/attendance-backend-go/internal/repository/postgresql"
)

func TestUpdateReviewSingleWinner(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewLeaveRepository(db)

	requester := createTestUser(t, ctx)
	admin := createTestUser(t, ctx)

	created, err := repo.Create(ctx, leave.LeaveRequest{
		UserID: requester,
		Type:   leave.TypeSuggestion,
		Reason: "standing desks",
		Status: leave.StatusPending,
	})
	require.NoError(t, err)

	approve := created
	approve.Status = leave.StatusApproved
	approve.ReviewedBy = &admin

	reject := created
	reject.Status = leave.StatusRejected
	reject.ReviewedBy = &admin

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, req := range []leave.LeaveRequest{approve, reject} {
		i, req := i, req
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = repo.UpdateReview(ctx, req)
		}()
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, leave.ErrAlreadyReviewed)
		}
	}
	assert.Equal(t, 1, winners, "exactly one review wins")

	final, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, leave.StatusPending, final.Status)
}

func TestApprovedDaysInYearCountsAllTypes(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewLeaveRepository(db)

	userID := createTestUser(t, ctx)
	year := 2026
	date := func(month time.Month, day int) *time.Time {
		v := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		return &v
	}

	requests := []leave.LeaveRequest{
		// 3 days of regular leave
		{UserID: userID, Type: leave.TypeLeave, Status: leave.StatusApproved,
			StartDate: date(time.March, 2), EndDate: date(time.March, 4)},
		// 2 days of remote work also draw from the balance
		{UserID: userID, Type: leave.TypeRemoteWork, Status: leave.StatusApproved,
			StartDate: date(time.April, 6), EndDate: date(time.April, 7)},
		// pending requests do not count yet
		{UserID: userID, Type: leave.TypeLeave, Status: leave.StatusPending,
			StartDate: date(time.May, 11), EndDate: date(time.May, 15)},
		// suggestions carry no dates and are skipped
		{UserID: userID, Type: leave.TypeSuggestion, Status: leave.StatusApproved},
	}
	for _, req := range requests {
		_, err := repo.Create(ctx, req)
		require.NoError(t, err)
	}

	days, err := repo.ApprovedDaysInYear(ctx, userID, year)
	require.NoError(t, err)
	assert.Equal(t, 5, days)
}

func TestListUpcomingIncludesPending(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewLeaveRepository(db)

	userID := createTestUser(t, ctx)
	today := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	date := func(day int) *time.Time {
		v := time.Date(2026, 6, day, 0, 0, 0, 0, time.UTC)
		return &v
	}

	approved, err := repo.Create(ctx, leave.LeaveRequest{
		UserID: userID, Type: leave.TypeLeave, Status: leave.StatusApproved,
		StartDate: date(20), EndDate: date(22),
	})
	require.NoError(t, err)

	pending, err := repo.Create(ctx, leave.LeaveRequest{
		UserID: userID, Type: leave.TypeRemoteWork, Status: leave.StatusPending,
		StartDate: date(25), EndDate: date(26),
	})
	require.NoError(t, err)

	// rejected and already-ended requests stay out of the panel
	_, err = repo.Create(ctx, leave.LeaveRequest{
		UserID: userID, Type: leave.TypeLeave, Status: leave.StatusRejected,
		StartDate: date(18), EndDate: date(19),
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, leave.LeaveRequest{
		UserID: userID, Type: leave.TypeLeave, Status: leave.StatusApproved,
		StartDate: date(1), EndDate: date(5),
	})
	require.NoError(t, err)

	upcoming, err := repo.ListUpcoming(ctx, userID, today)
	require.NoError(t, err)

	require.Len(t, upcoming, 2)
	assert.Equal(t, approved.ID, upcoming[0].ID, "soonest first")
	assert.Equal(t, pending.ID, upcoming[1].ID)
}
