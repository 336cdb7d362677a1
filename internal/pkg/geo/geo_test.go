package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceIdentity(t *testing.T) {
	points := []Point{
		{0, 0},
		{28.6139, 77.2090},   // New Delhi
		{-33.8688, 151.2093}, // Sydney
		{89.9, -179.9},
	}
	for _, p := range points {
		d := Distance(p.Latitude, p.Longitude, p.Latitude, p.Longitude)
		assert.InDelta(t, 0, d, 1e-6, "distance(p, p) should be zero for %+v", p)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	a := Point{28.6139, 77.2090}
	b := Point{19.0760, 72.8777}
	assert.InDelta(t, DistanceBetween(a, b), DistanceBetween(b, a), 1e-6)
}

func TestDistanceKnownValue(t *testing.T) {
	// One degree of longitude at the equator is roughly 111,195 m.
	d := Distance(0, 0, 0, 1)
	assert.InEpsilon(t, 111195, d, 0.01)
}

func TestDistanceShortRange(t *testing.T) {
	// Two points a couple hundred meters apart in central Delhi.
	d := Distance(28.6139, 77.2090, 28.6149, 77.2100)
	assert.Greater(t, d, 100.0)
	assert.Less(t, d, 250.0)
}

func TestDistanceNaNPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(Distance(math.NaN(), 0, 0, 0)))
}
