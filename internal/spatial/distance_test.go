package spatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	// Singapore city hall to Changi airport, roughly 17.5 km
	dist := HaversineDistance(1.2931, 103.8520, 1.3644, 103.9915)

	assert.InDelta(t, 17500, dist, 500)
}

func TestDistanceKmZero(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(1.35, 103.82, 1.35, 103.82))
}

func TestDistanceKmOneDegreeLatitude(t *testing.T) {
	// One degree of latitude is ~111.2 km everywhere
	dist := DistanceKm(0, 0, 1, 0)
	assert.InDelta(t, 111.2, dist, 0.5)
}

func TestBearing(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64
	}{
		{"due north", 0, 0, 1, 0, 0},
		{"due east", 0, 0, 0, 1, 90},
		{"due south", 1, 0, 0, 0, 180},
		{"due west", 0, 1, 0, 0, 270},
		{"identical points", 1.35, 103.82, 1.35, 103.82, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bearing(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			assert.InDelta(t, tt.want, got, 0.01)
			assert.True(t, got >= 0 && got < 360)
		})
	}
}

func TestPathDistanceKm(t *testing.T) {
	lats := []float64{0, 0.01, 0.02}
	lngs := []float64{0, 0, 0}

	path := PathDistanceKm(lats, lngs)
	direct := DistanceKm(0, 0, 0.02, 0)

	// Straight-line path: sum of legs equals the direct distance
	assert.InDelta(t, direct, path, 1e-6)
}

func TestPathDistanceKmDegenerate(t *testing.T) {
	assert.Equal(t, 0.0, PathDistanceKm(nil, nil))
	assert.Equal(t, 0.0, PathDistanceKm([]float64{1}, []float64{1}))
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(1.35, 103.82))
	assert.True(t, ValidCoordinate(-90, 180))
	assert.False(t, ValidCoordinate(91, 0))
	assert.False(t, ValidCoordinate(0, -181))
	assert.False(t, ValidCoordinate(math.NaN(), 0))
}
