package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/facilityops/hvac-backend-go/internal/domain/attendance"
	"github.com/facilityops/hvac-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, user_id, site_id, date,
	check_in_time, check_in_latitude, check_in_longitude, check_in_address,
	check_out_time, check_out_latitude, check_out_longitude, check_out_address,
	status, remarks, shift_id, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.UserID, &att.SiteID, &att.Date,
		&att.CheckInTime, &att.CheckInLatitude, &att.CheckInLongitude, &att.CheckInAddress,
		&att.CheckOutTime, &att.CheckOutLatitude, &att.CheckOutLongitude, &att.CheckOutAddress,
		&att.Status, &att.Remarks, &att.ShiftID, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// isUniqueViolation reports whether err is the (user_id, date) constraint.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create implements attendance.Repository.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	if att.ID == "" {
		att.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_logs (
			id, user_id, site_id, date,
			check_in_time, check_in_latitude, check_in_longitude, check_in_address,
			check_out_time, check_out_latitude, check_out_longitude, check_out_address,
			status, remarks, shift_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID,
		att.UserID,
		att.SiteID,
		att.Date,
		att.CheckInTime,
		att.CheckInLatitude,
		att.CheckInLongitude,
		att.CheckInAddress,
		att.CheckOutTime,
		att.CheckOutLatitude,
		att.CheckOutLongitude,
		att.CheckOutAddress,
		att.Status,
		att.Remarks,
		att.ShiftID,
	).Scan(&att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrDuplicateDay
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance log: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.Repository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_logs WHERE id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance log by ID: %w", err)
	}

	return att, nil
}

// GetByUserAndDate implements attendance.Repository. The most recently
// checked-in record wins when pre-constraint data holds duplicates.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_logs
		WHERE user_id = $1
		  AND date = $2
		ORDER BY check_in_time DESC
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no attendance today is a normal outcome
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &att, nil
}

// SetCheckOut implements attendance.Repository. The predicate on
// check_out_time IS NULL makes the checkout write-once even under races. The
// update and the miss disambiguation run in one transaction so the probe sees
// the same state the update did.
func (a *attendanceRepository) SetCheckOut(ctx context.Context, id string, upd attendance.CheckOutUpdate) (attendance.Attendance, error) {
	var att attendance.Attendance

	err := WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		query := `
			UPDATE attendance_logs
			SET check_out_time = $2,
			    check_out_latitude = $3,
			    check_out_longitude = $4,
			    check_out_address = $5,
			    remarks = $6,
			    updated_at = $7
			WHERE id = $1
			  AND check_out_time IS NULL
			RETURNING ` + attendanceColumns

		var scanErr error
		att, scanErr = scanAttendance(tx.QueryRow(ctx, query,
			id, upd.Time, upd.Latitude, upd.Longitude, upd.Address, upd.Remarks, time.Now().UTC(),
		))
		if scanErr == nil {
			return nil
		}
		if !errors.Is(scanErr, pgx.ErrNoRows) {
			return fmt.Errorf("failed to check out attendance log: %w", scanErr)
		}

		// Distinguish "missing" from "already closed".
		var exists bool
		if probeErr := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM attendance_logs WHERE id = $1)`, id).Scan(&exists); probeErr != nil {
			return fmt.Errorf("failed to probe attendance log: %w", probeErr)
		}
		if exists {
			return attendance.ErrAlreadyCheckedOut
		}
		return attendance.ErrAttendanceNotFound
	})
	if err != nil {
		return attendance.Attendance{}, err
	}

	return att, nil
}

// ListByUser implements attendance.Repository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string, f attendance.UserFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "user_id = $1"
	args := []interface{}{userID}
	argIdx := 2

	if f.DateFrom != nil && *f.DateFrom != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *f.DateFrom)
		argIdx++
	}
	if f.DateTo != nil && *f.DateTo != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *f.DateTo)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendance_logs WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance logs: %w", err)
	}

	limit := f.Limit
	if limit == 0 {
		limit = 30
	}
	offset := (f.Page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT `+attendanceColumns+`
		FROM attendance_logs
		WHERE %s
		ORDER BY date DESC, check_in_time DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, att)
	}

	return logs, total, nil
}

// ListBySite implements attendance.Repository.
func (a *attendanceRepository) ListBySite(ctx context.Context, siteID, date string, status *string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "a.site_id = $1 AND a.date = $2"
	args := []interface{}{siteID, date}
	argIdx := 3

	if status != nil && *status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *status)
	}

	query := fmt.Sprintf(`
		SELECT
			a.id, a.user_id, a.site_id, a.date,
			a.check_in_time, a.check_in_latitude, a.check_in_longitude, a.check_in_address,
			a.check_out_time, a.check_out_latitude, a.check_out_longitude, a.check_out_address,
			a.status, a.remarks, a.shift_id, a.created_at, a.updated_at,
			u.name AS user_name,
			u.phone AS user_phone,
			u.role AS user_role
		FROM attendance_logs a
		LEFT JOIN users u ON u.user_id = a.user_id
		WHERE %s
		ORDER BY a.check_in_time ASC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query site attendance: %w", err)
	}
	defer rows.Close()

	var logs []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.UserID, &att.SiteID, &att.Date,
			&att.CheckInTime, &att.CheckInLatitude, &att.CheckInLongitude, &att.CheckInAddress,
			&att.CheckOutTime, &att.CheckOutLatitude, &att.CheckOutLongitude, &att.CheckOutAddress,
			&att.Status, &att.Remarks, &att.ShiftID, &att.CreatedAt, &att.UpdatedAt,
			&att.UserName, &att.UserPhone, &att.UserRole,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan site attendance: %w", err)
		}
		logs = append(logs, att)
	}

	return logs, nil
}

// Report implements attendance.Repository. A nil siteID means all sites.
func (a *attendanceRepository) Report(ctx context.Context, siteID *string, dateFrom, dateTo string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "a.date >= $1 AND a.date <= $2"
	args := []interface{}{dateFrom, dateTo}

	if siteID != nil {
		baseWhere += " AND a.site_id = $3"
		args = append(args, *siteID)
	}

	query := fmt.Sprintf(`
		SELECT
			a.id, a.user_id, a.site_id, a.date,
			a.check_in_time, a.check_in_latitude, a.check_in_longitude, a.check_in_address,
			a.check_out_time, a.check_out_latitude, a.check_out_longitude, a.check_out_address,
			a.status, a.remarks, a.shift_id, a.created_at, a.updated_at,
			u.name AS user_name,
			u.employee_code,
			s.name AS site_name,
			s.site_code
		FROM attendance_logs a
		LEFT JOIN users u ON u.user_id = a.user_id
		LEFT JOIN sites s ON s.site_id = a.site_id
		WHERE %s
		ORDER BY a.date ASC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance report: %w", err)
	}
	defer rows.Close()

	var logs []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.UserID, &att.SiteID, &att.Date,
			&att.CheckInTime, &att.CheckInLatitude, &att.CheckInLongitude, &att.CheckInAddress,
			&att.CheckOutTime, &att.CheckOutLatitude, &att.CheckOutLongitude, &att.CheckOutAddress,
			&att.Status, &att.Remarks, &att.ShiftID, &att.CreatedAt, &att.UpdatedAt,
			&att.UserName, &att.EmployeeCode, &att.SiteName, &att.SiteCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance report row: %w", err)
		}
		logs = append(logs, att)
	}

	return logs, nil
}

// Update implements attendance.Repository.
func (a *attendanceRepository) Update(ctx context.Context, id string, upd attendance.UpdateRequest) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	appendSet := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if upd.SiteID != nil {
		appendSet("site_id", upd.SiteID)
	}
	if upd.Date != nil {
		appendSet("date", upd.Date)
	}
	if upd.CheckInTime != nil {
		appendSet("check_in_time", upd.CheckInTime)
	}
	if upd.CheckOutTime != nil {
		appendSet("check_out_time", upd.CheckOutTime)
	}
	if upd.CheckInLatitude != nil {
		appendSet("check_in_latitude", upd.CheckInLatitude)
	}
	if upd.CheckInLongitude != nil {
		appendSet("check_in_longitude", upd.CheckInLongitude)
	}
	if upd.CheckOutLatitude != nil {
		appendSet("check_out_latitude", upd.CheckOutLatitude)
	}
	if upd.CheckOutLongitude != nil {
		appendSet("check_out_longitude", upd.CheckOutLongitude)
	}
	if upd.CheckInAddress != nil {
		appendSet("check_in_address", upd.CheckInAddress)
	}
	if upd.CheckOutAddress != nil {
		appendSet("check_out_address", upd.CheckOutAddress)
	}
	if upd.Status != nil {
		appendSet("status", upd.Status)
	}
	if upd.Remarks != nil {
		appendSet("remarks", upd.Remarks)
	}
	if upd.ShiftID != nil {
		appendSet("shift_id", upd.ShiftID)
	}

	if len(updates) == 0 {
		return a.GetByID(ctx, id)
	}

	appendSet("updated_at", time.Now().UTC())

	args = append(args, id)
	query := "UPDATE attendance_logs SET "
	for i, u := range updates {
		if i > 0 {
			query += ", "
		}
		query += u
	}
	query += fmt.Sprintf(" WHERE id = $%d RETURNING ", argIdx) + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance log: %w", err)
	}

	return att, nil
}

// Delete implements attendance.Repository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM attendance_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance log: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// UserIDsMissingCheckIn implements attendance.Repository.
func (a *attendanceRepository) UserIDsMissingCheckIn(ctx context.Context, date string) ([]string, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT DISTINCT su.user_id
		FROM site_user su
		WHERE NOT EXISTS (
			SELECT 1
			FROM attendance_logs a
			WHERE a.user_id = su.user_id
			  AND a.date = $1
		)
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query users missing check-in: %w", err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		userIDs = append(userIDs, id)
	}

	return userIDs, nil
}

// OpenSessions implements attendance.Repository.
func (a *attendanceRepository) OpenSessions(ctx context.Context, date string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_logs
		WHERE date = $1
		  AND check_out_time IS NULL
		ORDER BY check_in_time ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query open sessions: %w", err)
	}
	defer rows.Close()

	var logs []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan open session: %w", err)
		}
		logs = append(logs, att)
	}

	return logs, nil
}
