package cron

import (
	"context"
	"testing"
	"time"

	"github.com/facilityops/hvac-backend-go/internal/pkg/clock"
	"github.com/facilityops/hvac-backend-go/internal/pkg/ttlstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReminderService struct {
	checkInAt     string
	checkOutAt    string
	checkInSends  int
	checkOutSends int
}

func (f *fakeReminderService) SendMissedCheckInReminders(_ context.Context) (int, error) {
	f.checkInSends++
	return 3, nil
}

func (f *fakeReminderService) SendMissedCheckOutReminders(_ context.Context) (int, error) {
	f.checkOutSends++
	return 2, nil
}

func (f *fakeReminderService) ReminderTimes(_ context.Context) (string, string, error) {
	return f.checkInAt, f.checkOutAt, nil
}

func newJobs(t *testing.T, svc *fakeReminderService, now time.Time) *AttendanceJobs {
	t.Helper()
	store := ttlstore.New(time.Minute)
	t.Cleanup(store.Close)
	return NewAttendanceJobs(svc, store, clock.Fixed(now))
}

func TestDispatchDueReminders_CheckInMinuteFiresOnce(t *testing.T) {
	// 04:00 UTC is 09:30 on the Asia/Kolkata wall clock.
	svc := &fakeReminderService{checkInAt: "09:30", checkOutAt: "18:30"}
	jobs := newJobs(t, svc, time.Date(2024, 3, 11, 4, 0, 0, 0, time.UTC))

	require.NoError(t, jobs.DispatchDueReminders(context.Background()))
	require.NoError(t, jobs.DispatchDueReminders(context.Background()))

	// The daily latch absorbs the second poll of the same minute.
	assert.Equal(t, 1, svc.checkInSends)
	assert.Equal(t, 0, svc.checkOutSends)
}

func TestDispatchDueReminders_CheckOutMinute(t *testing.T) {
	// 13:00 UTC is 18:30 IST.
	svc := &fakeReminderService{checkInAt: "09:30", checkOutAt: "18:30"}
	jobs := newJobs(t, svc, time.Date(2024, 3, 11, 13, 0, 0, 0, time.UTC))

	require.NoError(t, jobs.DispatchDueReminders(context.Background()))

	assert.Equal(t, 0, svc.checkInSends)
	assert.Equal(t, 1, svc.checkOutSends)
}

func TestDispatchDueReminders_OffMinuteIsQuiet(t *testing.T) {
	svc := &fakeReminderService{checkInAt: "09:30", checkOutAt: "18:30"}
	jobs := newJobs(t, svc, time.Date(2024, 3, 11, 6, 15, 0, 0, time.UTC))

	require.NoError(t, jobs.DispatchDueReminders(context.Background()))

	assert.Equal(t, 0, svc.checkInSends)
	assert.Equal(t, 0, svc.checkOutSends)
}
