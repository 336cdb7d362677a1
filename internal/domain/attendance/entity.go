package attendance

import "time"

// Attendance statuses accepted by the record store.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusHalfDay = "Half Day"
	StatusLeave   = "Leave"
)

// ValidStatuses lists the accepted status values in display order.
var ValidStatuses = []string{StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave}

// Attendance is one user's attendance record for one civil day.
//
// Date is the Asia/Kolkata calendar date computed once at check-in and never
// recomputed; it is the daily-uniqueness key together with UserID. SiteID is
// nil for a work-from-home check-in. CheckOutTime, once set, is immutable.
type Attendance struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	SiteID            *string    `json:"site_id"`
	Date              string     `json:"date"` // YYYY-MM-DD, Asia/Kolkata
	CheckInTime       time.Time  `json:"check_in_time"`
	CheckInLatitude   *float64   `json:"check_in_latitude,omitempty"`
	CheckInLongitude  *float64   `json:"check_in_longitude,omitempty"`
	CheckInAddress    *string    `json:"check_in_address,omitempty"`
	CheckOutTime      *time.Time `json:"check_out_time,omitempty"`
	CheckOutLatitude  *float64   `json:"check_out_latitude,omitempty"`
	CheckOutLongitude *float64   `json:"check_out_longitude,omitempty"`
	CheckOutAddress   *string    `json:"check_out_address,omitempty"`
	Status            string     `json:"status"`
	Remarks           *string    `json:"remarks,omitempty"`
	ShiftID           *string    `json:"shift_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	// Joined display fields, populated by listing queries only.
	UserName     *string `json:"user_name,omitempty"`
	UserPhone    *string `json:"user_phone,omitempty"`
	UserRole     *string `json:"user_role,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	SiteName     *string `json:"site_name,omitempty"`
	SiteCode     *string `json:"site_code,omitempty"`
}

// IsClosed reports whether the record already has a checkout.
func (a Attendance) IsClosed() bool { return a.CheckOutTime != nil }
