package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/attendance-backend-go/internal/repository/postgresql"
)

func TestGetMonthStatsLateBoundary(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	repo := postgresql.NewDashboardRepository(db)

	userID := createTestUser(t, ctx)
	threshold := 9 * time.Hour

	signIns := []struct {
		day       int
		hour, min int
		sec       int
	}{
		{6, 8, 0, 0},   // comfortably on time
		{7, 9, 0, 0},   // exactly at the threshold, still on time
		{8, 9, 0, 1},   // one second past, late
		{9, 10, 15, 0}, // late
	}
	for _, s := range signIns {
		date := time.Date(2026, 7, s.day, 0, 0, 0, 0, time.UTC)
		record, err := attendanceRepo.GetOrCreate(ctx, userID, date)
		require.NoError(t, err)

		signIn := date.Add(time.Duration(s.hour)*time.Hour + time.Duration(s.min)*time.Minute + time.Duration(s.sec)*time.Second)
		record.SignIn = &signIn
		require.NoError(t, attendanceRepo.UpdateSigns(ctx, record))
	}

	stats, err := repo.GetMonthStats(ctx, userID, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), threshold)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.DaysWorked)
	assert.Equal(t, 2, stats.LateArrivals, "09:00:00 sharp does not count as late")
}
