package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/facilityops/hvac-backend-go/internal/domain/attendance"
	"github.com/facilityops/hvac-backend-go/internal/domain/notification"
	"github.com/facilityops/hvac-backend-go/internal/pkg/clock"
	"github.com/facilityops/hvac-backend-go/internal/pkg/validator"
)

type notificationService struct {
	attendanceRepo attendance.Repository
	repo           notification.Repository
	settingsRepo   notification.SettingsRepository
	clk            clock.Clock
}

func NewNotificationService(
	attendanceRepo attendance.Repository,
	repo notification.Repository,
	settingsRepo notification.SettingsRepository,
	clk clock.Clock,
) notification.Service {
	return &notificationService{
		attendanceRepo: attendanceRepo,
		repo:           repo,
		settingsRepo:   settingsRepo,
		clk:            clk,
	}
}

// SendMissedCheckInReminders implements notification.Service. A failed write
// for one user does not abort the rest of the batch.
func (s *notificationService) SendMissedCheckInReminders(ctx context.Context) (int, error) {
	today := clock.CivilDate(s.clk.Now())

	userIDs, err := s.attendanceRepo.UserIDsMissingCheckIn(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to find users missing check-in: %w", err)
	}

	sent := 0
	for _, userID := range userIDs {
		_, err := s.repo.Create(ctx, notification.Notification{
			UserID: userID,
			Type:   notification.TypeMissedCheckIn,
			Title:  "Check-In Reminder",
			Body:   "Don't forget to check in!",
		})
		if err != nil {
			slog.Warn("Failed to create check-in reminder", "user_id", userID, "error", err)
			continue
		}
		sent++
	}

	return sent, nil
}

// SendMissedCheckOutReminders implements notification.Service.
func (s *notificationService) SendMissedCheckOutReminders(ctx context.Context) (int, error) {
	today := clock.CivilDate(s.clk.Now())

	open, err := s.attendanceRepo.OpenSessions(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to find open sessions: %w", err)
	}

	sent := 0
	for _, att := range open {
		_, err := s.repo.Create(ctx, notification.Notification{
			UserID: att.UserID,
			Type:   notification.TypeMissedCheckOut,
			Title:  "Check-Out Reminder",
			Body:   "Remember to check out!",
		})
		if err != nil {
			slog.Warn("Failed to create check-out reminder", "user_id", att.UserID, "error", err)
			continue
		}
		sent++
	}

	return sent, nil
}

// ReminderTimes implements notification.Service. Missing or malformed
// settings fall back to the defaults, so a bad row in the settings table can
// never silence the reminders.
func (s *notificationService) ReminderTimes(ctx context.Context) (checkIn, checkOut string, err error) {
	checkIn, err = s.settingsRepo.Get(ctx, notification.SettingCheckInReminderTime)
	if err != nil {
		return "", "", fmt.Errorf("failed to read check-in reminder time: %w", err)
	}
	if !validator.IsValidTimeOfDay(checkIn) {
		if checkIn != "" {
			slog.Warn("Ignoring malformed check-in reminder time", "value", checkIn)
		}
		checkIn = notification.DefaultCheckInReminderTime
	}

	checkOut, err = s.settingsRepo.Get(ctx, notification.SettingCheckOutReminderTime)
	if err != nil {
		return "", "", fmt.Errorf("failed to read check-out reminder time: %w", err)
	}
	if !validator.IsValidTimeOfDay(checkOut) {
		if checkOut != "" {
			slog.Warn("Ignoring malformed check-out reminder time", "value", checkOut)
		}
		checkOut = notification.DefaultCheckOutReminderTime
	}

	return checkIn, checkOut, nil
}
