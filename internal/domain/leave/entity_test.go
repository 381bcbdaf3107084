package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestDurationInclusive(t *testing.T) {
	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  int
	}{
		{"single day", datePtr(2026, 3, 10), datePtr(2026, 3, 10), 1},
		{"work week", datePtr(2026, 3, 9), datePtr(2026, 3, 13), 5},
		{"across month boundary", datePtr(2026, 3, 30), datePtr(2026, 4, 2), 4},
		{"no dates", nil, nil, 0},
		{"only start", datePtr(2026, 3, 10), nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := LeaveRequest{StartDate: tt.start, EndDate: tt.end}
			assert.Equal(t, tt.want, l.Duration())
		})
	}
}

func strPtr(s string) *string { return &s }

func TestSubmitRequestValidate(t *testing.T) {
	valid := SubmitRequest{
		Type:      TypeLeave,
		StartDate: strPtr("2026-03-09"),
		EndDate:   strPtr("2026-03-13"),
		Reason:    "family vacation",
	}
	assert.NoError(t, valid.Validate())

	suggestion := SubmitRequest{Type: TypeSuggestion, Reason: "more coffee machines"}
	assert.NoError(t, suggestion.Validate(), "suggestions need no dates")

	missingDates := SubmitRequest{Type: TypeRemoteWork, Reason: "plumber visit"}
	assert.Error(t, missingDates.Validate())

	inverted := SubmitRequest{
		Type:      TypeLeave,
		StartDate: strPtr("2026-03-13"),
		EndDate:   strPtr("2026-03-09"),
		Reason:    "oops",
	}
	assert.Error(t, inverted.Validate())

	badType := SubmitRequest{Type: "Sabbatical", Reason: "long break"}
	assert.Error(t, badType.Validate())
}

func TestReviewRequestValidate(t *testing.T) {
	assert.NoError(t, (&ReviewRequest{Decision: DecisionApprove}).Validate())
	assert.NoError(t, (&ReviewRequest{Decision: DecisionReject, ReviewNotes: "overlaps release"}).Validate())
	assert.Error(t, (&ReviewRequest{Decision: "maybe"}).Validate())
}
