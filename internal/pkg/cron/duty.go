package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/duty"
)

type DutyJobs struct {
	dutyRepo duty.DutyRepository
}

func NewDutyJobs(dutyRepo duty.DutyRepository) *DutyJobs {
	return &DutyJobs{dutyRepo: dutyRepo}
}

func (j *DutyJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_overdue_duties", 1*time.Hour, j.MarkOverdueDuties)
}

// MarkOverdueDuties flips non-completed duties past their due date to
// Overdue. Completed duties are never touched, so a duty finished after its
// deadline keeps its Completed status.
func (j *DutyJobs) MarkOverdueDuties(ctx context.Context) error {
	marked, err := j.dutyRepo.MarkOverdue(ctx, time.Now())
	if err != nil {
		return err
	}

	if marked > 0 {
		slog.Info("Marked duties as overdue", "count", marked)
	}
	return nil
}
