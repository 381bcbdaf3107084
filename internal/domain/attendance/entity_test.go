package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestApplySignInThenSignOut(t *testing.T) {
	var a Attendance

	require.NoError(t, a.Apply(ActionSignIn, ts(8, 30)))
	require.NotNil(t, a.SignIn)
	assert.True(t, a.IsSignedIn())

	require.NoError(t, a.Apply(ActionSignOut, ts(17, 0)))
	require.NotNil(t, a.SignOut)
	assert.False(t, a.IsSignedIn())

	d, ok := a.Duration()
	require.True(t, ok)
	assert.Equal(t, 8*time.Hour+30*time.Minute, d)
}

func TestApplyDoubleSignIn(t *testing.T) {
	var a Attendance
	require.NoError(t, a.Apply(ActionSignIn, ts(8, 0)))

	err := a.Apply(ActionSignIn, ts(9, 0))
	assert.ErrorIs(t, err, ErrAlreadySignedIn)
	assert.Equal(t, ts(8, 0), *a.SignIn, "first sign-in must be preserved")
}

func TestApplySignOutWithoutSignIn(t *testing.T) {
	var a Attendance
	err := a.Apply(ActionSignOut, ts(17, 0))
	assert.ErrorIs(t, err, ErrNotSignedIn)
	assert.Nil(t, a.SignOut)
}

func TestApplySignOutTwice(t *testing.T) {
	var a Attendance
	require.NoError(t, a.Apply(ActionSignIn, ts(8, 0)))
	require.NoError(t, a.Apply(ActionSignOut, ts(17, 0)))

	err := a.Apply(ActionSignOut, ts(18, 0))
	assert.ErrorIs(t, err, ErrAlreadySignedOut)
	assert.Equal(t, ts(17, 0), *a.SignOut, "first sign-out must be preserved")
}

func TestApplyUnknownAction(t *testing.T) {
	var a Attendance
	assert.ErrorIs(t, a.Apply(Action("lunch"), ts(12, 0)), ErrInvalidAction)
}

func TestInferAction(t *testing.T) {
	var a Attendance

	action, err := a.InferAction()
	require.NoError(t, err)
	assert.Equal(t, ActionSignIn, action)

	require.NoError(t, a.Apply(ActionSignIn, ts(8, 0)))
	action, err = a.InferAction()
	require.NoError(t, err)
	assert.Equal(t, ActionSignOut, action)

	require.NoError(t, a.Apply(ActionSignOut, ts(17, 0)))
	_, err = a.InferAction()
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestDurationIncomplete(t *testing.T) {
	var a Attendance
	_, ok := a.Duration()
	assert.False(t, ok)

	require.NoError(t, a.Apply(ActionSignIn, ts(8, 0)))
	_, ok = a.Duration()
	assert.False(t, ok)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		ok   bool
		want string
	}{
		{8*time.Hour + 30*time.Minute, true, "8:30"},
		{45 * time.Minute, true, "0:45"},
		{9*time.Hour + 5*time.Minute, true, "9:05"},
		{0, false, "--:--"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.d, tt.ok))
	}
}
