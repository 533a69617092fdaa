package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/greenroute/carbon-backend-go/internal/models"
	"github.com/greenroute/carbon-backend-go/internal/spatial"
)

func TestSummarizeDistanceMatchesHaversineSum(t *testing.T) {
	s := NewSummarizer(DefaultConfig())
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	seg := makeTrack(start, 10, 30*time.Second, 0.0003, 4)

	summary := s.Summarize(seg)

	var want float64
	for i := 1; i < len(seg); i++ {
		want += spatial.DistanceKm(
			seg[i-1].Latitude, seg[i-1].Longitude,
			seg[i].Latitude, seg[i].Longitude,
		)
	}
	assert.InDelta(t, want, summary.TotalDistanceKm, 1e-6)
}

func TestSummarizeBasicStats(t *testing.T) {
	s := NewSummarizer(DefaultConfig())
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	seg := makeTrack(start, 10, 30*time.Second, 0.0003, 4)

	summary := s.Summarize(seg)

	assert.Equal(t, int64(270), summary.DurationS)
	assert.Equal(t, 10, summary.PointCount)
	// ~0.3 km in 270s is ~4 km/h
	assert.InDelta(t, 4.0, summary.AvgSpeedKmh, 0.5)
	assert.Equal(t, 4.0, summary.MaxSpeedKmh)
	assert.Equal(t, 0, summary.StopCount)
	assert.Equal(t, models.VolatilityStable, summary.Volatility)
}

func TestSummarizeStopCount(t *testing.T) {
	s := NewSummarizer(DefaultConfig())
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	seg := makeTrack(start, 10, 30*time.Second, 0.0003, 20)
	seg[3].Speed = 1.0
	seg[4].Speed = 0.5
	seg[5].Speed = 1.5

	summary := s.Summarize(seg)
	assert.Equal(t, 3, summary.StopCount)
}

func TestSummarizeSpeedFallbackFromLegs(t *testing.T) {
	s := NewSummarizer(DefaultConfig())
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	// No device speed at all: fall back to leg distance over time delta
	seg := makeTrack(start, 10, 30*time.Second, 0.0003, 0)

	summary := s.Summarize(seg)

	// 33.4m legs in 30s is ~4 km/h
	assert.InDelta(t, 4.0, summary.MaxSpeedKmh, 0.5)
	// First point has no incoming leg, so it counts as a stop
	assert.GreaterOrEqual(t, summary.StopCount, 1)
}

func TestSummarizeVolatilityLabels(t *testing.T) {
	s := NewSummarizer(DefaultConfig())
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("high", func(t *testing.T) {
		seg := makeTrack(start, 10, 30*time.Second, 0.0003, 30)
		// Alternate between 30 and 50 km/h: every delta exceeds 10 km/h
		for i := range seg {
			if i%2 == 0 {
				seg[i].Speed = 50
			}
		}
		assert.Equal(t, models.VolatilityHigh, s.Summarize(seg).Volatility)
	})

	t.Run("medium", func(t *testing.T) {
		seg := makeTrack(start, 10, 30*time.Second, 0.0003, 30)
		// 2 of 9 deltas exceed the threshold (~22%)
		seg[4].Speed = 45
		assert.Equal(t, models.VolatilityMedium, s.Summarize(seg).Volatility)
	})

	t.Run("stable", func(t *testing.T) {
		seg := makeTrack(start, 10, 30*time.Second, 0.0003, 30)
		assert.Equal(t, models.VolatilityStable, s.Summarize(seg).Volatility)
	})
}

func TestSummarizeEmptySegment(t *testing.T) {
	s := NewSummarizer(DefaultConfig())

	summary := s.Summarize(nil)
	assert.Equal(t, 0.0, summary.TotalDistanceKm)
	assert.Equal(t, models.VolatilityStable, summary.Volatility)
}

func TestTimeOfDayClassifier(t *testing.T) {
	c := NewTimeOfDayClassifier(time.UTC)

	tests := []struct {
		hour int
		want string
	}{
		{5, models.TripTypeOther},
		{6, models.TripTypeToWork},
		{9, models.TripTypeToWork},
		{10, models.TripTypeOther},
		{15, models.TripTypeOther},
		{16, models.TripTypeFromWork},
		{19, models.TripTypeFromWork},
		{20, models.TripTypeOther},
		{23, models.TripTypeOther},
	}

	for _, tt := range tests {
		start := time.Date(2025, 3, 10, tt.hour, 30, 0, 0, time.UTC)
		assert.Equal(t, tt.want, c.TripType(start), "hour %d", tt.hour)
	}
}

func TestStopRatio(t *testing.T) {
	k := models.KinematicSummary{StopCount: 3, PointCount: 10}
	assert.InDelta(t, 0.3, k.StopRatio(), 1e-9)

	empty := models.KinematicSummary{}
	assert.Equal(t, 0.0, empty.StopRatio())
}
