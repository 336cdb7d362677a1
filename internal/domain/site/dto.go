package site

// SiteDistance annotates a site with the distance from a supplied point.
// DistanceMeters is nil when the site has no stored coordinates; such a site
// is never in range.
type SiteDistance struct {
	Site
	DistanceMeters *float64 `json:"distance"`
	InRange        bool     `json:"in_range"`
	// EffectiveRadius is the radius the in-range check actually used: the
	// site's own if configured, else the caller default.
	EffectiveRadius float64 `json:"effective_radius"`
}

// LocationValidation is the ephemeral result of validating a user's position
// against their assigned sites. Built fresh per call, never persisted.
type LocationValidation struct {
	IsValid      bool           `json:"is_valid"`
	IsWFH        bool           `json:"is_wfh"`
	AllowedSites []SiteDistance `json:"allowed_sites"`
	AllSites     []SiteDistance `json:"all_sites,omitempty"`
	NearestSite  *SiteDistance  `json:"nearest_site,omitempty"`
	Message      string         `json:"message"`
}

// Allows reports whether siteID is in the allowed set.
func (v LocationValidation) Allows(siteID string) bool {
	for _, s := range v.AllowedSites {
		if s.ID == siteID {
			return true
		}
	}
	return false
}
