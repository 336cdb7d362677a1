package activity

import (
	"context"
	"time"
)

// Log is a best-effort audit record of a user action. Writing one must never
// block or fail the primary operation it annotates.
type Log struct {
	ID        string
	UserID    string
	Action    string
	Detail    string
	CreatedAt time.Time
}

// Repository appends activity records.
type Repository interface {
	Create(ctx context.Context, l Log) error
}
