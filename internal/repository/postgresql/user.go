package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/facilityops/hvac-backend-go/internal/domain/user"
	"github.com/facilityops/hvac-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}

// GetByID implements user.Repository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, name, phone, role, employee_code, work_location_type
		FROM users
		WHERE user_id = $1
	`

	var u user.User
	var workLocation *string
	err := q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Phone, &u.Role, &u.EmployeeCode, &workLocation,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	if workLocation != nil {
		u.WorkLocationType = user.ParseWorkLocation(*workLocation)
	}

	return u, nil
}

// GetWorkLocation implements user.Repository. A missing user is reported as
// WorkLocationUnknown, not an error.
func (r *userRepository) GetWorkLocation(ctx context.Context, id string) (user.WorkLocation, error) {
	q := GetQuerier(ctx, r.db)

	var workLocation *string
	err := q.QueryRow(ctx, `SELECT work_location_type FROM users WHERE user_id = $1`, id).Scan(&workLocation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.WorkLocationUnknown, nil
		}
		return user.WorkLocationUnknown, fmt.Errorf("failed to get user work location: %w", err)
	}

	if workLocation == nil {
		return user.WorkLocationUnknown, nil
	}
	return user.ParseWorkLocation(*workLocation), nil
}
