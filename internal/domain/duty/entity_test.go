package duty

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	pastDue := DelegatedDuty{Status: StatusPending, DueDate: yesterday}
	assert.True(t, pastDue.IsOverdue(now))

	inProgress := DelegatedDuty{Status: StatusInProgress, DueDate: yesterday}
	assert.True(t, inProgress.IsOverdue(now))

	completedLate := DelegatedDuty{Status: StatusCompleted, DueDate: yesterday}
	assert.False(t, completedLate.IsOverdue(now), "completed duties are never overdue")

	notYetDue := DelegatedDuty{Status: StatusPending, DueDate: tomorrow}
	assert.False(t, notYetDue.IsOverdue(now))
}

func TestCreateDutyRequestValidate(t *testing.T) {
	valid := CreateDutyRequest{
		AssignedTo: "user-1",
		Title:      "Prepare onboarding pack",
		Priority:   PriorityHigh,
		DueDate:    "2026-03-20",
	}
	assert.NoError(t, valid.Validate())

	badPriority := valid
	badPriority.Priority = "CRITICAL"
	assert.Error(t, badPriority.Validate())

	badDate := valid
	badDate.DueDate = "20/03/2026"
	assert.Error(t, badDate.Validate())

	assert.Error(t, (&CreateDutyRequest{Priority: PriorityLow, DueDate: "2026-03-20"}).Validate())
}

func TestUpdateDutyStatusRequestValidate(t *testing.T) {
	for _, status := range []string{StatusPending, StatusInProgress, StatusCompleted, StatusOverdue} {
		assert.NoError(t, (&UpdateDutyStatusRequest{Status: status}).Validate())
	}
	assert.Error(t, (&UpdateDutyStatusRequest{Status: "Paused"}).Validate())
}
