package dashboard

import (
	"fmt"
	"time"
)

// Chart range selectors.
const (
	RangeThisWeek  = "this_week"
	RangeLastWeek  = "last_week"
	RangeThisMonth = "this_month"
	RangeLastMonth = "last_month"
)

// RangeBounds resolves a selector to an inclusive [start, end] date span
// relative to now. Week ranges are rolling 7-day windows ending today
// (respectively seven days ago); month ranges are calendar months.
func RangeBounds(selector string, now time.Time) (start, end time.Time, err error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch selector {
	case RangeThisWeek:
		return today.AddDate(0, 0, -6), today, nil
	case RangeLastWeek:
		end = today.AddDate(0, 0, -7)
		return end.AddDate(0, 0, -6), end, nil
	case RangeThisMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, today, nil
	case RangeLastMonth:
		firstOfThis := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		start = firstOfThis.AddDate(0, -1, 0)
		return start, firstOfThis.AddDate(0, 0, -1), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown chart range %q", selector)
	}
}

// DatesBetween expands an inclusive [start, end] span into its individual
// dates, in order.
func DatesBetween(start, end time.Time) []time.Time {
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
