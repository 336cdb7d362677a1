package notification

import "time"

// Reminder types dispatched by the attendance jobs.
const (
	TypeMissedCheckIn  = "missed_check_in"
	TypeMissedCheckOut = "missed_check_out"
)

// Notification is a persisted reminder record. Push delivery happens outside
// this service; clients and delivery workers read these rows.
type Notification struct {
	ID        string
	UserID    string
	Type      string
	Title     string
	Body      string
	CreatedAt time.Time
}

// Settings keys for the reminder wall times (HH:MM, Asia/Kolkata).
const (
	SettingCheckInReminderTime  = "check_in_reminder_time"
	SettingCheckOutReminderTime = "check_out_reminder_time"
)

// Reminder time defaults applied when no setting row exists.
const (
	DefaultCheckInReminderTime  = "09:30"
	DefaultCheckOutReminderTime = "18:30"
)
