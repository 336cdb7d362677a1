package user

// WorkLocation classifies where a user is expected to work from. It gates
// geofence validation: remote users check in from anywhere.
type WorkLocation string

const (
	// WorkLocationUnknown means the user has no classification on record
	// (or does not exist). Treated as office-bound for validation.
	WorkLocationUnknown WorkLocation = ""
	WorkLocationOffice  WorkLocation = "Office"
	WorkLocationRemote  WorkLocation = "WFH"
)

// ParseWorkLocation normalizes the stored classification. Historical data
// carries two spellings of the work-from-home flag ("WFH" and "WHF"); both
// map to the one canonical value so nothing downstream string-matches
// against either.
func ParseWorkLocation(s string) WorkLocation {
	switch s {
	case "WFH", "WHF":
		return WorkLocationRemote
	case "":
		return WorkLocationUnknown
	default:
		return WorkLocationOffice
	}
}

// IsRemote reports whether the classification exempts the user from geofence
// validation.
func (w WorkLocation) IsRemote() bool { return w == WorkLocationRemote }

// User is owned by the external record store; this service only reads the
// fields attendance needs.
type User struct {
	ID               string       `json:"user_id"`
	Name             string       `json:"name"`
	Phone            *string      `json:"phone,omitempty"`
	Role             string       `json:"role"`
	EmployeeCode     *string      `json:"employee_code,omitempty"`
	WorkLocationType WorkLocation `json:"work_location_type"`
}
