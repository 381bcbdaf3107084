package todo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestTransitionForward(t *testing.T) {
	item := TodoItem{Status: StatusTodo}

	require.NoError(t, item.Transition(StatusOngoing, testNow))
	assert.Equal(t, StatusOngoing, item.Status)
	require.NotNil(t, item.StartedAt)
	assert.Nil(t, item.CompletedAt)

	later := testNow.Add(2 * time.Hour)
	require.NoError(t, item.Transition(StatusDone, later))
	assert.Equal(t, StatusDone, item.Status)
	assert.Equal(t, testNow, *item.StartedAt, "started_at is set once")
	require.NotNil(t, item.CompletedAt)
	assert.Equal(t, later, *item.CompletedAt)
}

func TestTransitionDirectToDone(t *testing.T) {
	item := TodoItem{Status: StatusTodo}

	require.NoError(t, item.Transition(StatusDone, testNow))
	assert.Equal(t, StatusDone, item.Status)
	require.NotNil(t, item.StartedAt, "skipping ONGOING still backfills started_at")
	require.NotNil(t, item.CompletedAt)
}

func TestTransitionBackwardRefused(t *testing.T) {
	item := TodoItem{Status: StatusTodo}
	require.NoError(t, item.Transition(StatusDone, testNow))
	done := *item.CompletedAt

	assert.ErrorIs(t, item.Transition(StatusOngoing, testNow.Add(time.Hour)), ErrInvalidTransition)
	assert.ErrorIs(t, item.Transition(StatusDone, testNow.Add(time.Hour)), ErrInvalidTransition)
	assert.Equal(t, StatusDone, item.Status)
	assert.Equal(t, done, *item.CompletedAt, "completed_at never changes after DONE")
}

func TestTransitionOngoingFromOngoingRefused(t *testing.T) {
	item := TodoItem{Status: StatusOngoing}
	assert.ErrorIs(t, item.Transition(StatusOngoing, testNow), ErrInvalidTransition)
}

func TestTransitionUnknownStatus(t *testing.T) {
	item := TodoItem{Status: StatusTodo}
	assert.ErrorIs(t, item.Transition("PAUSED", testNow), ErrInvalidTransition)
	assert.Equal(t, StatusTodo, item.Status)
}
