package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/dashboard"
)

func TestDaysWorkedPercent(t *testing.T) {
	tests := []struct {
		daysWorked int
		want       int
	}{
		{0, 0},
		{11, 50},
		{22, 100},
		{30, 100}, // capped even past a full month
		{5, 23},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, daysWorkedPercent(tt.daysWorked), "days worked %d", tt.daysWorked)
	}
}

func TestVacationDaysLeft(t *testing.T) {
	assert.Equal(t, 20, vacationDaysLeft(0))
	assert.Equal(t, 12, vacationDaysLeft(8))
	assert.Equal(t, 0, vacationDaysLeft(20))
	assert.Equal(t, 0, vacationDaysLeft(25), "never negative")
}

func TestOnTimePercent(t *testing.T) {
	assert.Equal(t, 0, onTimePercent(dashboard.DayCounts{}), "no sign-ins yields zero, not a division by zero")
	assert.Equal(t, 100, onTimePercent(dashboard.DayCounts{Total: 4, OnTime: 4}))
	assert.Equal(t, 50, onTimePercent(dashboard.DayCounts{Total: 4, OnTime: 2}))
	assert.Equal(t, 66, onTimePercent(dashboard.DayCounts{Total: 3, OnTime: 2}), "truncated, not rounded")
}

func TestRecentAttendanceLateness(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	signIn := func(h, m, s int) *time.Time {
		v := date.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second)
		return &v
	}

	tests := []struct {
		name   string
		signIn *time.Time
		late   bool
	}{
		{"well before threshold", signIn(8, 15, 0), false},
		{"exactly at threshold", signIn(9, 0, 0), false},
		{"one second past threshold", signIn(9, 0, 1), true},
		{"late morning", signIn(10, 30, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := toRecentAttendance([]attendance.Attendance{{Date: date, SignIn: tt.signIn}})
			require.Len(t, items, 1)
			assert.Equal(t, tt.late, items[0].Late)
		})
	}
}
