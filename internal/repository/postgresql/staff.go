package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/staff"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type staffProfileRepositoryImpl struct {
	db *database.DB
}

func NewStaffProfileRepository(db *database.DB) staff.ProfileRepository {
	return &staffProfileRepositoryImpl{db: db}
}

const profileSelect = `
	SELECT p.id, p.user_id, p.department_id, p.phone, p.position, p.bio,
		   p.hire_date, p.is_active, p.barcode, p.created_at, p.updated_at,
		   TRIM(u.first_name || ' ' || u.last_name), d.name
	FROM staff_profiles p
	JOIN users u ON u.id = p.user_id
	LEFT JOIN departments d ON d.id = p.department_id
`

func scanProfile(row pgx.Row) (staff.Profile, error) {
	var p staff.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.DepartmentID, &p.Phone, &p.Position, &p.Bio,
		&p.HireDate, &p.IsActive, &p.Barcode, &p.CreatedAt, &p.UpdatedAt,
		&p.UserFullName, &p.DepartmentName,
	)
	return p, err
}

// Create implements staff.ProfileRepository. The ON CONFLICT clause makes the
// insert a no-op when a profile already exists for the user, keeping the
// barcode immutable even under a duplicate registration race.
func (r *staffProfileRepositoryImpl) Create(ctx context.Context, p staff.Profile) (staff.Profile, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO staff_profiles (user_id, department_id, phone, position, bio, hire_date, is_active, barcode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO NOTHING
	`

	_, err := q.Exec(ctx, insertQuery,
		p.UserID, p.DepartmentID, p.Phone, p.Position, p.Bio, p.HireDate, p.IsActive, p.Barcode,
	)
	if err != nil {
		return staff.Profile{}, fmt.Errorf("failed to create staff profile: %w", err)
	}

	return r.GetByUserID(ctx, p.UserID)
}

// GetByUserID implements staff.ProfileRepository.
func (r *staffProfileRepositoryImpl) GetByUserID(ctx context.Context, userID string) (staff.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := profileSelect + ` WHERE p.user_id = $1`

	p, err := scanProfile(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Profile{}, staff.ErrProfileNotFound
		}
		return staff.Profile{}, fmt.Errorf("failed to get staff profile: %w", err)
	}
	return p, nil
}

// GetByBarcode implements staff.ProfileRepository.
func (r *staffProfileRepositoryImpl) GetByBarcode(ctx context.Context, code string) (staff.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := profileSelect + ` WHERE p.barcode = $1`

	p, err := scanProfile(q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Profile{}, staff.ErrProfileNotFound
		}
		return staff.Profile{}, fmt.Errorf("failed to get staff profile by barcode: %w", err)
	}
	return p, nil
}
