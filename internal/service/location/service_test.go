package location

import (
	"context"
	"testing"

	"github.com/facilityops/hvac-backend-go/internal/domain/site"
	"github.com/facilityops/hvac-backend-go/internal/domain/user"
	"github.com/facilityops/hvac-backend-go/internal/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSiteRepo struct {
	sitesByUser map[string][]site.Site
}

func (f *fakeSiteRepo) AssignedSites(_ context.Context, userID string) ([]site.Site, error) {
	return f.sitesByUser[userID], nil
}

func (f *fakeSiteRepo) GetByID(_ context.Context, id string) (site.Site, error) {
	for _, sites := range f.sitesByUser {
		for _, s := range sites {
			if s.ID == id {
				return s, nil
			}
		}
	}
	return site.Site{}, site.ErrSiteNotFound
}

type fakeUserRepo struct {
	workLocations map[string]user.WorkLocation
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	return user.User{ID: id}, nil
}

func (f *fakeUserRepo) GetWorkLocation(_ context.Context, id string) (user.WorkLocation, error) {
	return f.workLocations[id], nil
}

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }

func newTestService(sites map[string][]site.Site, locations map[string]user.WorkLocation) site.LocationService {
	return NewLocationService(
		&fakeSiteRepo{sitesByUser: sites},
		&fakeUserRepo{workLocations: locations},
		0,
	)
}

func TestValidate_WFHUserSkipsGeofence(t *testing.T) {
	svc := newTestService(
		map[string][]site.Site{
			"u1": {{ID: "s1", Name: "Plant A"}},
		},
		map[string]user.WorkLocation{"u1": user.WorkLocationRemote},
	)

	// No coordinates supplied at all.
	v, err := svc.Validate(context.Background(), "u1", nil)
	require.NoError(t, err)

	assert.True(t, v.IsValid)
	assert.True(t, v.IsWFH)
	assert.Len(t, v.AllowedSites, 1)
	assert.Equal(t, "Work from home user - can check in from anywhere", v.Message)
}

func TestValidate_MisspelledWFHStillRemote(t *testing.T) {
	assert.True(t, user.ParseWorkLocation("WHF").IsRemote())
	assert.True(t, user.ParseWorkLocation("WFH").IsRemote())
	assert.False(t, user.ParseWorkLocation("Office").IsRemote())
}

func TestValidate_CoordinatesRequiredForOfficeUser(t *testing.T) {
	svc := newTestService(
		map[string][]site.Site{
			"u1": {{ID: "s1", Name: "Plant A", Latitude: ptrFloat(28.6), Longitude: ptrFloat(77.2)}},
		},
		map[string]user.WorkLocation{"u1": user.WorkLocationOffice},
	)

	v, err := svc.Validate(context.Background(), "u1", nil)
	require.NoError(t, err)

	assert.False(t, v.IsValid)
	assert.False(t, v.IsWFH)
	assert.Empty(t, v.AllowedSites)
	assert.Equal(t, "Location coordinates required for non-WFH check-in", v.Message)
}

func TestValidate_NoAssignedSites(t *testing.T) {
	svc := newTestService(
		map[string][]site.Site{},
		map[string]user.WorkLocation{"u1": user.WorkLocationOffice},
	)

	v, err := svc.Validate(context.Background(), "u1", &geo.Point{Latitude: 28.6, Longitude: 77.2})
	require.NoError(t, err)

	assert.False(t, v.IsValid)
	assert.Equal(t, "No sites assigned to this user", v.Message)
}

func TestValidate_UnknownUserTreatedAsOfficeBound(t *testing.T) {
	svc := newTestService(map[string][]site.Site{}, map[string]user.WorkLocation{})

	v, err := svc.Validate(context.Background(), "ghost", nil)
	require.NoError(t, err)

	assert.False(t, v.IsValid)
	assert.Equal(t, "Location coordinates required for non-WFH check-in", v.Message)
}

func TestValidate_WithinRange(t *testing.T) {
	svc := newTestService(
		map[string][]site.Site{
			"u1": {
				{ID: "s1", Name: "Plant A", Latitude: ptrFloat(28.6000), Longitude: ptrFloat(77.2000)},
			},
		},
		map[string]user.WorkLocation{"u1": user.WorkLocationOffice},
	)

	// ~157m north of the site center, well inside the 500m default.
	v, err := svc.Validate(context.Background(), "u1", &geo.Point{Latitude: 28.6014, Longitude: 77.2000})
	require.NoError(t, err)

	assert.True(t, v.IsValid)
	require.Len(t, v.AllowedSites, 1)
	assert.Equal(t, "s1", v.AllowedSites[0].ID)
	assert.True(t, v.AllowedSites[0].InRange)
	require.NotNil(t, v.AllowedSites[0].DistanceMeters)
	assert.InDelta(t, 155, *v.AllowedSites[0].DistanceMeters, 10)
	assert.Equal(t, float64(site.DefaultRadiusMeters), v.AllowedSites[0].EffectiveRadius)
	assert.Equal(t, "1 site(s) within range", v.Message)
}

func TestValidate_SiteRadiusOverridesDefault(t *testing.T) {
	svc := newTestService(
		map[string][]site.Site{
			"u1": {
				// Tight 100m geofence; the point sits ~155m away.
				{ID: "s1", Name: "Plant A", Latitude: ptrFloat(28.6000), Longitude: ptrFloat(77.2000), RadiusMeters: ptrInt(100)},
			},
		},
		map[string]user.WorkLocation{"u1": user.WorkLocationOffice},
	)

	v, err := svc.Validate(context.Background(), "u1", &geo.Point{Latitude: 28.6014, Longitude: 77.2000})
	require.NoError(t, err)

	assert.False(t, v.IsValid)
	require.NotNil(t, v.NearestSite)
	assert.Equal(t, "s1", v.NearestSite.ID)
	assert.Equal(t, float64(100), v.NearestSite.EffectiveRadius)
}

func TestValidate_NearestSiteMessage(t *testing.T) {
	svc := newTestService(
		map[string][]site.Site{
			"u1": {
				{ID: "far", Name: "Plant B", Latitude: ptrFloat(28.7000), Longitude: ptrFloat(77.2000)},
				{ID: "near", Name: "Plant A", Latitude: ptrFloat(28.6100), Longitude: ptrFloat(77.2000)},
			},
		},
		map[string]user.WorkLocation{"u1": user.WorkLocationOffice},
	)

	v, err := svc.Validate(context.Background(), "u1", &geo.Point{Latitude: 28.6000, Longitude: 77.2000})
	require.NoError(t, err)

	assert.False(t, v.IsValid)
	require.NotNil(t, v.NearestSite)
	assert.Equal(t, "near", v.NearestSite.ID)
	assert.Contains(t, v.Message, "Plant A")
	assert.Contains(t, v.Message, "Must be within 500m.")
}

func TestValidate_SitesWithoutCoordinatesNeverInRange(t *testing.T) {
	svc := newTestService(
		map[string][]site.Site{
			"u1": {
				{ID: "s1", Name: "Plant A"}, // no stored center
			},
		},
		map[string]user.WorkLocation{"u1": user.WorkLocationOffice},
	)

	v, err := svc.Validate(context.Background(), "u1", &geo.Point{Latitude: 28.6, Longitude: 77.2})
	require.NoError(t, err)

	assert.False(t, v.IsValid)
	assert.Nil(t, v.NearestSite)
	require.Len(t, v.AllSites, 1)
	assert.Nil(t, v.AllSites[0].DistanceMeters)
	assert.False(t, v.AllSites[0].InRange)
	assert.Equal(t, "No sites with coordinates found", v.Message)
}

func TestValidate_BoundaryIsInclusive(t *testing.T) {
	center := site.Site{ID: "s1", Name: "Plant A", Latitude: ptrFloat(28.6), Longitude: ptrFloat(77.2)}
	svc := newTestService(
		map[string][]site.Site{"u1": {center}},
		map[string]user.WorkLocation{"u1": user.WorkLocationOffice},
	)

	// Standing on the center: distance zero is trivially within radius.
	v, err := svc.Validate(context.Background(), "u1", &geo.Point{Latitude: 28.6, Longitude: 77.2})
	require.NoError(t, err)
	assert.True(t, v.IsValid)
	require.Len(t, v.AllowedSites, 1)
	assert.Equal(t, float64(0), *v.AllowedSites[0].DistanceMeters)
}

func TestValidate_ExactRadiusIsInRange(t *testing.T) {
	// A point standing exactly on the geofence edge is in range; a radius
	// even a millimeter shorter puts the same point out.
	center := site.Site{ID: "s1", Name: "Plant A", Latitude: ptrFloat(28.6), Longitude: ptrFloat(77.2)}
	point := &geo.Point{Latitude: 28.6031, Longitude: 77.2}
	edge := geo.Distance(point.Latitude, point.Longitude, *center.Latitude, *center.Longitude)

	sites := map[string][]site.Site{"u1": {center}}
	locations := map[string]user.WorkLocation{"u1": user.WorkLocationOffice}

	svc := NewLocationService(
		&fakeSiteRepo{sitesByUser: sites},
		&fakeUserRepo{workLocations: locations},
		edge,
	)
	v, err := svc.Validate(context.Background(), "u1", point)
	require.NoError(t, err)
	assert.True(t, v.IsValid)
	require.Len(t, v.AllowedSites, 1)
	assert.Equal(t, edge, v.AllowedSites[0].EffectiveRadius)

	svc = NewLocationService(
		&fakeSiteRepo{sitesByUser: sites},
		&fakeUserRepo{workLocations: locations},
		edge-0.001,
	)
	v, err = svc.Validate(context.Background(), "u1", point)
	require.NoError(t, err)
	assert.False(t, v.IsValid)
	assert.Empty(t, v.AllowedSites)
	require.NotNil(t, v.NearestSite)
	assert.False(t, v.NearestSite.InRange)
}
