package todo

import "time"

// Todo statuses. Status only moves forward: TODO -> ONGOING -> DONE, with
// TODO -> DONE allowed as a direct jump.
const (
	StatusTodo    = "TODO"
	StatusOngoing = "ONGOING"
	StatusDone    = "DONE"
)

// TodoItem is a personal task owned by one user.
type TodoItem struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Status      string
	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Transition moves the item to next at the given instant. started_at is set
// exactly once on the first move into ONGOING or DONE; completed_at exactly
// once on the move into DONE. Backward moves and unknown statuses are
// refused without mutating.
func (t *TodoItem) Transition(next string, now time.Time) error {
	switch next {
	case StatusOngoing:
		if t.Status != StatusTodo {
			return ErrInvalidTransition
		}
	case StatusDone:
		if t.Status == StatusDone {
			return ErrInvalidTransition
		}
	default:
		return ErrInvalidTransition
	}

	if t.StartedAt == nil {
		t.StartedAt = &now
	}
	if next == StatusDone && t.CompletedAt == nil {
		t.CompletedAt = &now
	}
	t.Status = next
	return nil
}
