package location

import (
	"context"
	"fmt"
	"math"

	"github.com/facilityops/hvac-backend-go/internal/domain/site"
	"github.com/facilityops/hvac-backend-go/internal/domain/user"
	"github.com/facilityops/hvac-backend-go/internal/pkg/geo"
)

type locationService struct {
	siteRepo      site.Repository
	userRepo      user.Repository
	defaultRadius float64
}

// NewLocationService builds the geofence validator. defaultRadiusMeters is
// applied to sites without their own configured radius; zero falls back to
// site.DefaultRadiusMeters.
func NewLocationService(siteRepo site.Repository, userRepo user.Repository, defaultRadiusMeters float64) site.LocationService {
	if defaultRadiusMeters <= 0 {
		defaultRadiusMeters = site.DefaultRadiusMeters
	}
	return &locationService{
		siteRepo:      siteRepo,
		userRepo:      userRepo,
		defaultRadius: defaultRadiusMeters,
	}
}

// Validate implements site.LocationService.
//
// Work-from-home users short-circuit before the coordinate requirement: they
// are valid with no point at all, and every assigned site is allowed. For
// everyone else a point is mandatory and each assigned site is measured
// against its effective radius.
func (s *locationService) Validate(ctx context.Context, userID string, point *geo.Point) (site.LocationValidation, error) {
	workLocation, err := s.userRepo.GetWorkLocation(ctx, userID)
	if err != nil {
		return site.LocationValidation{}, fmt.Errorf("failed to resolve work location: %w", err)
	}

	if workLocation.IsRemote() {
		sites, err := s.siteRepo.AssignedSites(ctx, userID)
		if err != nil {
			return site.LocationValidation{}, fmt.Errorf("failed to get assigned sites: %w", err)
		}
		allowed := make([]site.SiteDistance, 0, len(sites))
		for _, st := range sites {
			allowed = append(allowed, site.SiteDistance{Site: st})
		}
		return site.LocationValidation{
			IsValid:      true,
			IsWFH:        true,
			AllowedSites: allowed,
			Message:      "Work from home user - can check in from anywhere",
		}, nil
	}

	if point == nil {
		return site.LocationValidation{
			IsValid:      false,
			AllowedSites: []site.SiteDistance{},
			Message:      "Location coordinates required for non-WFH check-in",
		}, nil
	}

	sites, err := s.siteRepo.AssignedSites(ctx, userID)
	if err != nil {
		return site.LocationValidation{}, fmt.Errorf("failed to get assigned sites: %w", err)
	}
	if len(sites) == 0 {
		return site.LocationValidation{
			IsValid:      false,
			AllowedSites: []site.SiteDistance{},
			Message:      "No sites assigned to this user",
		}, nil
	}

	all := make([]site.SiteDistance, 0, len(sites))
	allowed := make([]site.SiteDistance, 0, len(sites))
	var nearest *site.SiteDistance

	for _, st := range sites {
		sd := site.SiteDistance{Site: st}
		if !st.HasCoordinates() {
			// A site without a stored center can never be in range.
			all = append(all, sd)
			continue
		}

		distance := geo.Distance(point.Latitude, point.Longitude, *st.Latitude, *st.Longitude)
		radius := s.defaultRadius
		if st.RadiusMeters != nil && *st.RadiusMeters > 0 {
			radius = float64(*st.RadiusMeters)
		}

		rounded := math.Round(distance)
		sd.DistanceMeters = &rounded
		sd.InRange = distance <= radius
		sd.EffectiveRadius = radius

		all = append(all, sd)
		if sd.InRange {
			allowed = append(allowed, sd)
		}
		if nearest == nil || rounded < *nearest.DistanceMeters {
			copied := sd
			nearest = &copied
		}
	}

	v := site.LocationValidation{
		IsValid:      len(allowed) > 0,
		AllowedSites: allowed,
		AllSites:     all,
		NearestSite:  nearest,
	}

	switch {
	case len(allowed) > 0:
		v.Message = fmt.Sprintf("%d site(s) within range", len(allowed))
	case nearest != nil:
		v.Message = fmt.Sprintf("You are %.0fm away from the nearest site (%s). Must be within %.0fm.",
			*nearest.DistanceMeters, nearest.Name, s.defaultRadius)
	default:
		v.Message = "No sites with coordinates found"
	}

	return v, nil
}

// UserSites implements site.LocationService.
func (s *locationService) UserSites(ctx context.Context, userID string) ([]site.Site, error) {
	sites, err := s.siteRepo.AssignedSites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assigned sites: %w", err)
	}
	return sites, nil
}
