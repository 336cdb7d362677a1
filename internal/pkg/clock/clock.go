package clock

import "time"

// attendanceZone is the civil calendar all attendance dates are bucketed in,
// independent of the server's local timezone.
const attendanceZone = "Asia/Kolkata"

var kolkata *time.Location

func init() {
	loc, err := time.LoadLocation(attendanceZone)
	if err != nil {
		// UTC+5:30, no DST.
		loc = time.FixedZone("IST", 5*3600+1800)
	}
	kolkata = loc
}

// Clock provides the current instant. Services take a Clock so tests can pin
// time; production code uses System.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns the wall clock.
func System() Clock { return systemClock{} }

// Fixed returns a Clock frozen at t.
func Fixed(t time.Time) Clock { return fixedClock{t} }

type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }

// CivilDate renders an instant as a YYYY-MM-DD calendar date in the
// attendance zone.
func CivilDate(t time.Time) string {
	return t.In(kolkata).Format("2006-01-02")
}

// WallTime returns the hour and minute of an instant in the attendance zone.
func WallTime(t time.Time) (hour, minute int) {
	local := t.In(kolkata)
	return local.Hour(), local.Minute()
}

// Location returns the attendance zone location.
func Location() *time.Location { return kolkata }
