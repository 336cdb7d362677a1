package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/facilityops/hvac-backend-go/internal/domain/notification"
	"github.com/facilityops/hvac-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

// Create implements notification.Repository.
func (r *notificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	query := `
		INSERT INTO notifications (id, user_id, type, title, body)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, n.ID, n.UserID, n.Type, n.Title, n.Body).Scan(&n.CreatedAt)
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) notification.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get implements notification.SettingsRepository. A missing key returns
// ("", nil) so the caller can apply its default.
func (r *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	q := GetQuerier(ctx, r.db)

	var value string
	err := q.QueryRow(ctx, `SELECT value FROM app_settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get setting %q: %w", key, err)
	}

	return value, nil
}
