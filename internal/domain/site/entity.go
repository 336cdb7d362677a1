package site

// DefaultRadiusMeters is the allowed check-in radius applied when a site has
// none of its own configured.
const DefaultRadiusMeters = 500

// Site is a physical location users are assigned to. Coordinates are
// nullable: a site without a stored coordinate is never eligible for
// geofenced check-in. Owned by the external record store; read-only here.
type Site struct {
	ID        string   `json:"site_id"`
	Name      string   `json:"name"`
	SiteCode  *string  `json:"site_code,omitempty"`
	Address   *string  `json:"address,omitempty"`
	City      *string  `json:"city,omitempty"`
	State     *string  `json:"state,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	// RadiusMeters is the configured geofence radius (domain 100-1000 at
	// creation time). Nil falls back to the caller-supplied default.
	RadiusMeters *int `json:"radius,omitempty"`
}

// HasCoordinates reports whether the site has a stored geofence center.
func (s Site) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}
