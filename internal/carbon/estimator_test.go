package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greenroute/carbon-backend-go/internal/models"
)

func TestEstimateByMode(t *testing.T) {
	e := NewEstimator(DefaultFactors())

	tests := []struct {
		mode string
		km   float64
		want float64
	}{
		{models.ModeWalking, 5, 0},
		{models.ModeBicycle, 12, 0},
		{models.ModeMotorcycle, 10, 0.95},
		{models.ModeCar, 10, 2.1},
		{models.ModeBus, 10, 0.89},
		{models.ModeMRT, 10, 0.33},
		{models.ModeTrain, 10, 0.41},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, e.Estimate(tt.mode, tt.km), 1e-9, tt.mode)
	}
}

func TestEstimateUnknownModeUsesFallback(t *testing.T) {
	e := NewEstimator(DefaultFactors())

	assert.InDelta(t, 1.5, e.Estimate(models.ModeUnknown, 10), 1e-9)
	assert.InDelta(t, 1.5, e.Estimate("hovercraft", 10), 1e-9)
}

func TestEstimateNegativeDistanceClamped(t *testing.T) {
	e := NewEstimator(DefaultFactors())
	assert.Equal(t, 0.0, e.Estimate(models.ModeCar, -5))
}

func TestEmissionMonotonicInDistance(t *testing.T) {
	e := NewEstimator(DefaultFactors())

	prev := -1.0
	for km := 0.0; km <= 100; km += 2.5 {
		emission := e.Estimate(models.ModeCar, km)
		assert.Greater(t, emission, prev)
		prev = emission
	}
}

func TestEcoScore(t *testing.T) {
	e := NewEstimator(DefaultFactors())

	// Pure car travel scores 0
	assert.InDelta(t, 0, e.EcoScore(2.1, 10), 1e-9)
	// Zero-emission travel scores 100
	assert.InDelta(t, 100, e.EcoScore(0, 10), 1e-9)
	// No travel at all scores 100
	assert.InDelta(t, 100, e.EcoScore(0, 0), 1e-9)
	// Bus travel lands in between
	score := e.EcoScore(0.89, 10)
	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 100.0)
	// Worse than car clamps at 0
	assert.Equal(t, 0.0, e.EcoScore(5, 10))
}

func TestTreesEquivalent(t *testing.T) {
	e := NewEstimator(DefaultFactors())

	assert.InDelta(t, 1.0, e.TreesEquivalent(21.77), 1e-9)
	assert.Equal(t, 0.0, e.TreesEquivalent(0))
	assert.Equal(t, 0.0, e.TreesEquivalent(-3))
}

func TestBusEquivalent(t *testing.T) {
	e := NewEstimator(DefaultFactors())
	assert.InDelta(t, 0.89, e.BusEquivalent(10), 1e-9)
}
