package attendance

import (
	"time"

	"github.com/facilityops/hvac-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// CheckInRequest opens the day's attendance record. SiteID accepts the "WFH"
// sentinel, which persists a null site reference. Coordinates are optional as
// a pair; a lone latitude or longitude is treated as absent by validation.
type CheckInRequest struct {
	UserID    string   `json:"user_id"`
	SiteID    string   `json:"site_id"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   *string  `json:"address,omitempty"`
	ShiftID   *string  `json:"shift_id,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id is required",
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// HasCoordinates reports whether both coordinates were supplied.
func (r *CheckInRequest) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

type CheckOutRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   *string  `json:"address,omitempty"`
	Remarks   *string  `json:"remarks,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// HasRemarks reports whether non-blank remarks were supplied.
func (r *CheckOutRequest) HasRemarks() bool {
	return r.Remarks != nil && !validator.IsEmpty(*r.Remarks)
}

// CreateRequest is the raw administrative/webhook insert path. Unlike
// CheckIn it takes the date and timestamps verbatim.
type CreateRequest struct {
	UserID            string     `json:"user_id"`
	SiteID            *string    `json:"site_id,omitempty"`
	Date              string     `json:"date"`
	CheckInTime       *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime      *time.Time `json:"check_out_time,omitempty"`
	CheckInLatitude   *float64   `json:"check_in_latitude,omitempty"`
	CheckInLongitude  *float64   `json:"check_in_longitude,omitempty"`
	CheckOutLatitude  *float64   `json:"check_out_latitude,omitempty"`
	CheckOutLongitude *float64   `json:"check_out_longitude,omitempty"`
	CheckInAddress    *string    `json:"check_in_address,omitempty"`
	CheckOutAddress   *string    `json:"check_out_address,omitempty"`
	ShiftID           *string    `json:"shift_id,omitempty"`
	Status            string     `json:"status,omitempty"`
	Remarks           *string    `json:"remarks,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Present, Absent, Half Day, Leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRequest is the generic administrative edit path. created_at is never
// updatable; check-in/check-out instants are, since admins fix forgotten
// punches.
type UpdateRequest struct {
	SiteID            *string    `json:"site_id,omitempty"`
	Date              *string    `json:"date,omitempty"`
	CheckInTime       *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime      *time.Time `json:"check_out_time,omitempty"`
	CheckInLatitude   *float64   `json:"check_in_latitude,omitempty"`
	CheckInLongitude  *float64   `json:"check_in_longitude,omitempty"`
	CheckOutLatitude  *float64   `json:"check_out_latitude,omitempty"`
	CheckOutLongitude *float64   `json:"check_out_longitude,omitempty"`
	CheckInAddress    *string    `json:"check_in_address,omitempty"`
	CheckOutAddress   *string    `json:"check_out_address,omitempty"`
	Status            *string    `json:"status,omitempty"`
	Remarks           *string    `json:"remarks,omitempty"`
	ShiftID           *string    `json:"shift_id,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil && *r.Date != "" {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Present, Absent, Half Day, Leave",
		})
	}

	if r.CheckInLatitude != nil && !validator.IsValidLatitude(*r.CheckInLatitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_latitude",
			Message: "check_in_latitude must be between -90 and 90",
		})
	}
	if r.CheckInLongitude != nil && !validator.IsValidLongitude(*r.CheckInLongitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_longitude",
			Message: "check_in_longitude must be between -180 and 180",
		})
	}
	if r.CheckOutLatitude != nil && !validator.IsValidLatitude(*r.CheckOutLatitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out_latitude",
			Message: "check_out_latitude must be between -90 and 90",
		})
	}
	if r.CheckOutLongitude != nil && !validator.IsValidLongitude(*r.CheckOutLongitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out_longitude",
			Message: "check_out_longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// FILTERS & PAGINATION
// ========================================

// UserFilter bounds a per-user history query. The date range is inclusive on
// both ends.
type UserFilter struct {
	Page     int
	Limit    int
	DateFrom *string // YYYY-MM-DD
	DateTo   *string // YYYY-MM-DD
}

func (f *UserFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 30
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.DateFrom != nil && *f.DateFrom != "" {
		if _, ok := validator.IsValidDate(*f.DateFrom); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_from",
				Message: "date_from must be in YYYY-MM-DD format",
			})
		}
	}
	if f.DateTo != nil && *f.DateTo != "" {
		if _, ok := validator.IsValidDate(*f.DateTo); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_to",
				Message: "date_to must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SiteFilter bounds a per-site daily listing. Date defaults to today's
// Asia/Kolkata civil date when absent.
type SiteFilter struct {
	Date   *string // YYYY-MM-DD
	Status *string
}

func (f *SiteFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil && *f.Date != "" {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Status != nil && !validator.IsInSlice(*f.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Present, Absent, Half Day, Leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// RESPONSES
// ========================================

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type Response struct {
	ID                string   `json:"id"`
	UserID            string   `json:"user_id"`
	SiteID            *string  `json:"site_id"`
	Date              string   `json:"date"`
	CheckInTime       *string  `json:"check_in_time,omitempty"`
	CheckOutTime      *string  `json:"check_out_time,omitempty"`
	CheckInLatitude   *float64 `json:"check_in_latitude,omitempty"`
	CheckInLongitude  *float64 `json:"check_in_longitude,omitempty"`
	CheckOutLatitude  *float64 `json:"check_out_latitude,omitempty"`
	CheckOutLongitude *float64 `json:"check_out_longitude,omitempty"`
	CheckInAddress    *string  `json:"check_in_address,omitempty"`
	CheckOutAddress   *string  `json:"check_out_address,omitempty"`
	Status            string   `json:"status"`
	Remarks           *string  `json:"remarks,omitempty"`
	ShiftID           *string  `json:"shift_id,omitempty"`
	UserName          *string  `json:"user_name,omitempty"`
	UserPhone         *string  `json:"user_phone,omitempty"`
	UserRole          *string  `json:"user_role,omitempty"`
	EmployeeCode      *string  `json:"employee_code,omitempty"`
	SiteName          *string  `json:"site_name,omitempty"`
	SiteCode          *string  `json:"site_code,omitempty"`
	CreatedAt         string   `json:"created_at,omitempty"`
	UpdatedAt         string   `json:"updated_at,omitempty"`
}

type ListResponse struct {
	Records    []Response `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// CheckOutResponse carries the closed record plus the policy figures. Hours
// worked is rendered to two decimal places for display; IsEarlyCheckout is
// reported even when remarks were supplied, for the UI.
type CheckOutResponse struct {
	Record          Response `json:"data"`
	HoursWorked     string   `json:"hours_worked"`
	IsEarlyCheckout bool     `json:"is_early_checkout"`
}
