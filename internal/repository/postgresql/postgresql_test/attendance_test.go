package postgresql_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/repository/postgresql"
)

func createTestUser(t *testing.T, ctx context.Context) string {
	db := testDatabase(t)

	var userID string
	username := fmt.Sprintf("test-user-%d-%d", time.Now().Unix(), time.Now().Nanosecond())
	err := db.QueryRow(ctx, `
		INSERT INTO users (username, email, first_name, last_name, password_hash, is_admin, is_active)
		VALUES ($1, $1 || '@example.com', 'Test', 'User', 'x', false, true)
		RETURNING id
	`, username).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func TestGetOrCreateReturnsSameRecord(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)

	userID := createTestUser(t, ctx)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	first, err := repo.GetOrCreate(ctx, userID, date)
	require.NoError(t, err)
	assert.Nil(t, first.SignIn, "fresh record carries no sign-in")

	second, err := repo.GetOrCreate(ctx, userID, date)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same (user, date) maps to one row")
}

func TestGetOrCreateConcurrent(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)

	userID := createTestUser(t, ctx)
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	ids := make([]string, 8)
	var g errgroup.Group
	for i := range ids {
		i := i
		g.Go(func() error {
			record, err := repo.GetOrCreate(ctx, userID, date)
			if err != nil {
				return err
			}
			ids[i] = record.ID
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, id := range ids[1:] {
		assert.Equal(t, ids[0], id, "concurrent first calls converge on one row")
	}
}

func TestUpdateSignsPersists(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)

	userID := createTestUser(t, ctx)
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	record, err := repo.GetOrCreate(ctx, userID, date)
	require.NoError(t, err)

	signIn := time.Date(2026, 3, 12, 8, 30, 0, 0, time.UTC)
	record.SignIn = &signIn
	require.NoError(t, repo.UpdateSigns(ctx, record))

	got, err := repo.GetByUserAndDate(ctx, userID, date)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.SignIn)
	assert.True(t, got.SignIn.Equal(signIn))
}

func TestUpdateNoteOwnership(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)

	owner := createTestUser(t, ctx)
	stranger := createTestUser(t, ctx)
	date := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)

	record, err := repo.GetOrCreate(ctx, owner, date)
	require.NoError(t, err)

	assert.ErrorIs(t, repo.UpdateNote(ctx, record.ID, stranger, "not mine"), attendance.ErrAttendanceNotFound)
	assert.NoError(t, repo.UpdateNote(ctx, record.ID, owner, "worked on quarterly report"))
}
