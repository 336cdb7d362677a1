package response

import (
	"errors"
	"net/http"

	"github.com/facilityops/hvac-backend-go/internal/domain/attendance"
	"github.com/facilityops/hvac-backend-go/internal/domain/site"
	"github.com/facilityops/hvac-backend-go/internal/domain/user"
	"github.com/facilityops/hvac-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Structured attendance rejections carry a payload for the client.
	var alreadyErr *attendance.AlreadyCheckedInError
	if errors.As(err, &alreadyErr) {
		BadRequestWithData(w, "ALREADY_CHECKED_IN", "Already checked in today", alreadyErr.Existing)
		return
	}

	var earlyErr *attendance.EarlyCheckoutError
	if errors.As(err, &earlyErr) {
		BadRequestWithData(w, "EARLY_CHECKOUT", "Early checkout requires a reason", map[string]interface{}{
			"hours_worked":      earlyErr.HoursWorkedDisplay(),
			"is_early_checkout": true,
		})
		return
	}

	var locErr *attendance.LocationNotAllowedError
	if errors.As(err, &locErr) {
		BadRequestWithData(w, "LOCATION_NOT_ALLOWED", locErr.Error(), map[string]interface{}{
			"allowed_sites": locErr.AllowedSites,
			"nearest_site":  locErr.NearestSite,
		})
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateDay):
		Conflict(w, "Attendance already recorded for this date")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Attendance record is already checked out")

	// Site domain errors
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
