package notification

import "context"

// Repository persists notification records.
type Repository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
}

// SettingsRepository reads the configured reminder wall times. A missing
// setting returns ("", nil); the service applies the defaults.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
}

// Service dispatches attendance reminders.
type Service interface {
	// SendMissedCheckInReminders notifies users assigned to a site who have
	// no attendance record for today's civil date. Returns the number of
	// reminders dispatched.
	SendMissedCheckInReminders(ctx context.Context) (int, error)

	// SendMissedCheckOutReminders notifies users whose today-record is still
	// open.
	SendMissedCheckOutReminders(ctx context.Context) (int, error)

	// ReminderTimes returns the configured check-in and check-out reminder
	// wall times (HH:MM, Asia/Kolkata).
	ReminderTimes(ctx context.Context) (checkIn, checkOut string, err error)
}
