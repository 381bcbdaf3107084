package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.user_id, a.date, a.sign_in, a.sign_out, a.location, a.notes,
		   a.created_at, a.updated_at,
		   TRIM(u.first_name || ' ' || u.last_name), u.username
	FROM attendances a
	JOIN users u ON u.id = a.user_id
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.UserID, &a.Date, &a.SignIn, &a.SignOut, &a.Location, &a.Notes,
		&a.CreatedAt, &a.UpdatedAt,
		&a.UserFullName, &a.Username,
	)
	return a, err
}

// GetOrCreate implements attendance.AttendanceRepository. The insert races
// against concurrent first calls for the same (user, date); ON CONFLICT
// DO NOTHING lets exactly one row win and the follow-up select reads it.
func (r *attendanceRepositoryImpl) GetOrCreate(ctx context.Context, userID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO attendances (user_id, date)
		VALUES ($1, $2)
		ON CONFLICT (user_id, date) DO NOTHING
	`

	if _, err := q.Exec(ctx, insertQuery, userID, date); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	a, err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.user_id = $1 AND a.date = $2`, userID, date))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance after create: %w", err)
	}
	return a, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.user_id = $1 AND a.date = $2`, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return &a, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}
	return a, nil
}

// UpdateSigns implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) UpdateSigns(ctx context.Context, a attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET sign_in = $1, sign_out = $2, location = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, a.SignIn, a.SignOut, a.Location, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update attendance signs: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// UpdateNote implements attendance.AttendanceRepository. The user filter
// enforces ownership at the row level.
func (r *attendanceRepositoryImpl) UpdateNote(ctx context.Context, id string, userID string, note string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET notes = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`

	tag, err := q.Exec(ctx, query, note, id, userID)
	if err != nil {
		return fmt.Errorf("failed to update attendance note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.Username != nil && *filter.Username != "" {
		conditions = append(conditions, fmt.Sprintf("u.username ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.Username+"%")
		argIdx++
	}
	if filter.Date != nil && *filter.Date != "" {
		conditions = append(conditions, fmt.Sprintf("a.date = $%d", argIdx))
		args = append(args, *filter.Date)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM attendances a JOIN users u ON u.id = a.user_id` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	listQuery := attendanceSelect + where +
		fmt.Sprintf(" ORDER BY a.date DESC, u.username ASC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	records, err := collectAttendances(rows)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// GetRecent implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetRecent(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + ` WHERE a.user_id = $1 ORDER BY a.date DESC LIMIT $2`

	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent attendances: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// GetAllForExport implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetAllForExport(ctx context.Context) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + ` ORDER BY a.date DESC, u.username ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendances for export: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}
	return records, nil
}
