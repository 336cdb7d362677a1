package attendance

import (
	"context"
	"time"
)

// CheckOutUpdate is the single permitted mutation of a record's checkout
// fields.
type CheckOutUpdate struct {
	Time      time.Time
	Latitude  *float64
	Longitude *float64
	Address   *string
	Remarks   *string
}

// Repository defines data access for attendance records.
type Repository interface {
	// Create inserts a new record. Returns ErrDuplicateDay when the
	// (user_id, date) unique constraint rejects the insert.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByID returns ErrAttendanceNotFound when no record matches.
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByUserAndDate returns the record for a user on a civil date, or nil
	// when there is none. If more than one exists (defensively possible in
	// pre-constraint data) the most recently checked-in record wins.
	GetByUserAndDate(ctx context.Context, userID, date string) (*Attendance, error)

	// SetCheckOut writes the checkout fields exactly once: the update is
	// predicated on check_out_time IS NULL. Returns ErrAlreadyCheckedOut for
	// a closed record and ErrAttendanceNotFound for a missing one.
	SetCheckOut(ctx context.Context, id string, upd CheckOutUpdate) (Attendance, error)

	// ListByUser returns a page of a user's records ordered by date
	// descending then check-in time descending, with the total count.
	ListByUser(ctx context.Context, userID string, f UserFilter) ([]Attendance, int64, error)

	// ListBySite returns one civil date's records for a site ordered by
	// check-in time ascending, joined with user display fields.
	ListBySite(ctx context.Context, siteID, date string, status *string) ([]Attendance, error)

	// Report returns records across an inclusive date range ordered by date
	// ascending, joined with user and site display fields. A nil siteID
	// bypasses the site filter.
	Report(ctx context.Context, siteID *string, dateFrom, dateTo string) ([]Attendance, error)

	// Update applies an administrative edit and returns the updated record.
	Update(ctx context.Context, id string, upd UpdateRequest) (Attendance, error)

	// Delete removes a record; ErrAttendanceNotFound when absent.
	Delete(ctx context.Context, id string) error

	// UserIDsMissingCheckIn returns users assigned to at least one site with
	// no attendance record on the given civil date. Used by the reminder job.
	UserIDsMissingCheckIn(ctx context.Context, date string) ([]string, error)

	// OpenSessions returns records on the given civil date that have a
	// check-in but no checkout yet.
	OpenSessions(ctx context.Context, date string) ([]Attendance, error)
}
