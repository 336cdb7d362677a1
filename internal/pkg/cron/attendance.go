package cron

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/facilityops/hvac-backend-go/internal/domain/notification"
	"github.com/facilityops/hvac-backend-go/internal/pkg/clock"
	"github.com/facilityops/hvac-backend-go/internal/pkg/ttlstore"
)

// AttendanceJobs polls every minute and fires the missed check-in and
// check-out reminders when the Asia/Kolkata wall clock reaches the configured
// times. The once-per-day latch lives in the TTL store keyed by civil date,
// so a restart mid-minute cannot double-send and the flag expires on its own.
type AttendanceJobs struct {
	notificationSvc notification.Service
	sent            *ttlstore.Store
	clk             clock.Clock
}

func NewAttendanceJobs(notificationSvc notification.Service, sent *ttlstore.Store, clk clock.Clock) *AttendanceJobs {
	return &AttendanceJobs{
		notificationSvc: notificationSvc,
		sent:            sent,
		clk:             clk,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("attendance_reminders", time.Minute, j.DispatchDueReminders)
}

// DispatchDueReminders sends whichever reminder is due at the current minute.
func (j *AttendanceJobs) DispatchDueReminders(ctx context.Context) error {
	checkInAt, checkOutAt, err := j.notificationSvc.ReminderTimes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load reminder times: %w", err)
	}

	now := j.clk.Now()
	today := clock.CivilDate(now)

	if j.due(now, checkInAt) && !j.sent.Has("checkin-reminder:"+today) {
		count, err := j.notificationSvc.SendMissedCheckInReminders(ctx)
		if err != nil {
			return fmt.Errorf("failed to send missed check-in reminders: %w", err)
		}
		j.sent.Set("checkin-reminder:"+today, "sent", 24*time.Hour)
		slog.Info("Missed check-in reminders dispatched", "count", count, "date", today)
	}

	if j.due(now, checkOutAt) && !j.sent.Has("checkout-reminder:"+today) {
		count, err := j.notificationSvc.SendMissedCheckOutReminders(ctx)
		if err != nil {
			return fmt.Errorf("failed to send missed check-out reminders: %w", err)
		}
		j.sent.Set("checkout-reminder:"+today, "sent", 24*time.Hour)
		slog.Info("Missed check-out reminders dispatched", "count", count, "date", today)
	}

	return nil
}

// due reports whether the instant falls in the configured HH:MM minute.
func (j *AttendanceJobs) due(now time.Time, wallTime string) bool {
	parts := strings.SplitN(wallTime, ":", 2)
	if len(parts) != 2 {
		return false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return false
	}
	hour, minute := clock.WallTime(now)
	return hour == h && minute == m
}
