package postgresql

import (
	"context"
	"fmt"

	"github.com/facilityops/hvac-backend-go/internal/domain/activity"
	"github.com/facilityops/hvac-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type activityLogRepository struct {
	db *database.DB
}

func NewActivityLogRepository(db *database.DB) activity.Repository {
	return &activityLogRepository{db: db}
}

// Create implements activity.Repository.
func (r *activityLogRepository) Create(ctx context.Context, l activity.Log) error {
	q := GetQuerier(ctx, r.db)

	if l.ID == "" {
		l.ID = uuid.NewString()
	}

	_, err := q.Exec(ctx,
		`INSERT INTO activity_logs (id, user_id, action, detail) VALUES ($1, $2, $3, $4)`,
		l.ID, l.UserID, l.Action, l.Detail,
	)
	if err != nil {
		return fmt.Errorf("failed to create activity log: %w", err)
	}

	return nil
}
