package attendance

import (
	"errors"
	"fmt"

	"github.com/facilityops/hvac-backend-go/internal/domain/site"
)

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")

	// ErrDuplicateDay is returned by the repository when the (user_id, date)
	// unique constraint rejects an insert. It is the authoritative
	// daily-uniqueness signal; the service turns it into an
	// AlreadyCheckedInError with the winning record attached.
	ErrDuplicateDay = errors.New("attendance already recorded for this date")

	ErrAlreadyCheckedOut = errors.New("attendance record is already checked out")
)

// AlreadyCheckedInError rejects a second check-in on the same civil day. The
// existing record rides along so the client can resume the session instead
// of retrying blindly.
type AlreadyCheckedInError struct {
	Existing Attendance
}

func (e *AlreadyCheckedInError) Error() string {
	return "already checked in today"
}

// EarlyCheckoutError rejects a checkout under the minimum work hours when no
// remarks were supplied. HoursWorked is carried so the client can re-prompt
// with the figure.
type EarlyCheckoutError struct {
	HoursWorked float64
}

func (e *EarlyCheckoutError) Error() string {
	return "early checkout requires a reason"
}

// HoursWorkedDisplay renders the computed hours to two decimal places.
func (e *EarlyCheckoutError) HoursWorkedDisplay() string {
	return fmt.Sprintf("%.2f", e.HoursWorked)
}

// LocationNotAllowedError rejects a check-in whose selected site is outside
// the user's geofenced range, carrying the validation detail for the client.
type LocationNotAllowedError struct {
	Message      string
	AllowedSites []site.SiteDistance
	NearestSite  *site.SiteDistance
}

func (e *LocationNotAllowedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "you are not within range of the selected site"
}
