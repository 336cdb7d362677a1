package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCivilDateRollsOverAtISTMidnight(t *testing.T) {
	// 18:15 UTC is 23:45 IST the same evening; 18:45 UTC is 00:15 IST the
	// next morning. The two instants are half an hour apart but must land in
	// different civil-date buckets.
	before := time.Date(2024, 3, 10, 18, 15, 0, 0, time.UTC)
	after := time.Date(2024, 3, 10, 18, 45, 0, 0, time.UTC)

	assert.Equal(t, "2024-03-10", CivilDate(before))
	assert.Equal(t, "2024-03-11", CivilDate(after))
}

func TestCivilDateIgnoresInstantZone(t *testing.T) {
	// The same instant expressed in different zones is the same civil date.
	instant := time.Date(2024, 3, 10, 18, 15, 0, 0, time.UTC)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	assert.Equal(t, CivilDate(instant), CivilDate(instant.In(tokyo)))
}

func TestWallTime(t *testing.T) {
	// 04:00 UTC is 09:30 IST.
	h, m := WallTime(time.Date(2024, 3, 10, 4, 0, 0, 0, time.UTC))
	assert.Equal(t, 9, h)
	assert.Equal(t, 30, m)
}

func TestFixedClock(t *testing.T) {
	instant := time.Date(2024, 3, 10, 4, 0, 0, 0, time.UTC)
	assert.True(t, Fixed(instant).Now().Equal(instant))
}
