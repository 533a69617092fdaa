package classify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenroute/carbon-backend-go/internal/models"
)

func heuristicMode(t *testing.T, s models.KinematicSummary) *models.Verdict {
	t.Helper()
	verdict, err := NewHeuristicClassifier().Classify(context.Background(), s, nil)
	require.NoError(t, err)
	return verdict
}

func TestHeuristicWalking(t *testing.T) {
	v := heuristicMode(t, models.KinematicSummary{
		AvgSpeedKmh: 4.5, MaxSpeedKmh: 6, TotalDistanceKm: 0.3, PointCount: 10,
	})
	assert.Equal(t, models.ModeWalking, v.TransportMode)
	assert.Equal(t, SourceHeuristic, v.Source)
}

func TestHeuristicBicycle(t *testing.T) {
	v := heuristicMode(t, models.KinematicSummary{
		AvgSpeedKmh: 12, MaxSpeedKmh: 22, TotalDistanceKm: 5, PointCount: 50,
	})
	assert.Equal(t, models.ModeBicycle, v.TransportMode)
}

func TestHeuristicBicycleSpeedWithStopsIsBus(t *testing.T) {
	v := heuristicMode(t, models.KinematicSummary{
		AvgSpeedKmh: 12, MaxSpeedKmh: 35, TotalDistanceKm: 6,
		PointCount: 50, StopCount: 15,
	})
	assert.Equal(t, models.ModeBus, v.TransportMode)
}

func TestHeuristicMotorcycle(t *testing.T) {
	v := heuristicMode(t, models.KinematicSummary{
		AvgSpeedKmh: 25, MaxSpeedKmh: 60, TotalDistanceKm: 20, PointCount: 80,
	})
	assert.Equal(t, models.ModeMotorcycle, v.TransportMode)
}

func TestHeuristicVolatileMidBandStaysMotorcycle(t *testing.T) {
	v := heuristicMode(t, models.KinematicSummary{
		AvgSpeedKmh: 25, MaxSpeedKmh: 70, TotalDistanceKm: 10,
		PointCount: 80, StopCount: 25, Volatility: models.VolatilityHigh,
	})
	assert.Equal(t, models.ModeMotorcycle, v.TransportMode)
}

func TestHeuristicTransitTieBreak(t *testing.T) {
	// Short, stop-heavy mid-band trip: bus
	v := heuristicMode(t, models.KinematicSummary{
		AvgSpeedKmh: 22, MaxSpeedKmh: 50, TotalDistanceKm: 6,
		PointCount: 60, StopCount: 20, Volatility: models.VolatilityMedium,
	})
	assert.Equal(t, models.ModeBus, v.TransportMode)

	// Longer stop-heavy mid-band trip: mrt
	v = heuristicMode(t, models.KinematicSummary{
		AvgSpeedKmh: 30, MaxSpeedKmh: 70, TotalDistanceKm: 12,
		PointCount: 60, StopCount: 20, Volatility: models.VolatilityMedium,
	})
	assert.Equal(t, models.ModeMRT, v.TransportMode)
}

func TestHeuristicCar(t *testing.T) {
	v := heuristicMode(t, models.KinematicSummary{
		AvgSpeedKmh: 50, MaxSpeedKmh: 90, TotalDistanceKm: 10, PointCount: 20,
	})
	assert.Equal(t, models.ModeCar, v.TransportMode)
}

func TestHeuristicHighSpeedRail(t *testing.T) {
	v := heuristicMode(t, models.KinematicSummary{
		AvgSpeedKmh: 95, MaxSpeedKmh: 120, TotalDistanceKm: 40, PointCount: 40,
	})
	assert.Equal(t, models.ModeMRT, v.TransportMode)
}

func TestHeuristicConfidenceRange(t *testing.T) {
	for _, avg := range []float64{3, 10, 25, 50, 100} {
		v := heuristicMode(t, models.KinematicSummary{
			AvgSpeedKmh: avg, TotalDistanceKm: 10, PointCount: 20,
		})
		assert.GreaterOrEqual(t, v.Confidence, 0.65)
		assert.LessOrEqual(t, v.Confidence, 0.85)
	}
}
