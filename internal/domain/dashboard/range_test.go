package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tuesday, March 10th 2026
var rangeNow = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRangeBoundsThisWeek(t *testing.T) {
	start, end, err := RangeBounds(RangeThisWeek, rangeNow)
	require.NoError(t, err)
	assert.Equal(t, day(2026, 3, 4), start)
	assert.Equal(t, day(2026, 3, 10), end)
}

func TestRangeBoundsLastWeek(t *testing.T) {
	start, end, err := RangeBounds(RangeLastWeek, rangeNow)
	require.NoError(t, err)
	assert.Equal(t, day(2026, 2, 25), start)
	assert.Equal(t, day(2026, 3, 3), end)
}

func TestRangeBoundsThisMonth(t *testing.T) {
	start, end, err := RangeBounds(RangeThisMonth, rangeNow)
	require.NoError(t, err)
	assert.Equal(t, day(2026, 3, 1), start)
	assert.Equal(t, day(2026, 3, 10), end, "this month ends today, not month end")
}

func TestRangeBoundsLastMonth(t *testing.T) {
	start, end, err := RangeBounds(RangeLastMonth, rangeNow)
	require.NoError(t, err)
	assert.Equal(t, day(2026, 2, 1), start)
	assert.Equal(t, day(2026, 2, 28), end)
}

func TestRangeBoundsLastMonthAcrossYear(t *testing.T) {
	january := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	start, end, err := RangeBounds(RangeLastMonth, january)
	require.NoError(t, err)
	assert.Equal(t, day(2025, 12, 1), start)
	assert.Equal(t, day(2025, 12, 31), end)
}

func TestRangeBoundsUnknownSelector(t *testing.T) {
	_, _, err := RangeBounds("this_quarter", rangeNow)
	assert.Error(t, err)
}

func TestDatesBetween(t *testing.T) {
	dates := DatesBetween(day(2026, 3, 8), day(2026, 3, 10))
	require.Len(t, dates, 3)
	assert.Equal(t, day(2026, 3, 8), dates[0])
	assert.Equal(t, day(2026, 3, 10), dates[2])

	single := DatesBetween(day(2026, 3, 8), day(2026, 3, 8))
	assert.Len(t, single, 1)
}
