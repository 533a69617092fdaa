package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenroute/carbon-backend-go/internal/models"
)

// makeTrack builds n points starting at start, interval apart, each moving
// stepDeg degrees of latitude north, with a fixed reported speed in km/h.
// One degree of latitude is ~111.2 km.
func makeTrack(start time.Time, n int, interval time.Duration, stepDeg, speedKmh float64) []models.GpsPoint {
	points := make([]models.GpsPoint, n)
	for i := 0; i < n; i++ {
		points[i] = models.GpsPoint{
			SubjectID:  "subject-1",
			Latitude:   1.3000 + float64(i)*stepDeg,
			Longitude:  103.8000,
			RecordedAt: start.Add(time.Duration(i) * interval).Unix(),
			Speed:      speedKmh,
		}
	}
	return points
}

func TestSegmentEmptyInput(t *testing.T) {
	s := NewSegmenter(DefaultConfig())

	assert.Empty(t, s.Segment(nil))
	assert.Empty(t, s.Segment([]models.GpsPoint{}))
}

func TestSegmentSingleContinuousTrack(t *testing.T) {
	s := NewSegmenter(DefaultConfig())
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	// 20 points, 30s apart, ~33m per step: one qualifying segment
	points := makeTrack(start, 20, 30*time.Second, 0.0003, 4)

	segments := s.Segment(points)
	require.Len(t, segments, 1)
	assert.Len(t, segments[0], 20)
}

func TestSegmentSplitsOnTimeGap(t *testing.T) {
	s := NewSegmenter(DefaultConfig())
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	first := makeTrack(start, 10, 30*time.Second, 0.0003, 4)
	// Second half starts after a 10 minute gap
	second := makeTrack(start.Add(15*time.Minute), 10, 30*time.Second, 0.0003, 4)
	points := append(first, second...)

	segments := s.Segment(points)
	require.Len(t, segments, 2)

	// Gap property: no segment contains a consecutive pair further apart
	// than the threshold
	gap := int64(DefaultConfig().TimeGapThreshold.Seconds())
	for _, seg := range segments {
		for i := 1; i < len(seg); i++ {
			assert.LessOrEqual(t, seg[i].RecordedAt-seg[i-1].RecordedAt, gap)
		}
	}
}

func TestSegmentDiscardsTooShortDuration(t *testing.T) {
	s := NewSegmenter(DefaultConfig())
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	// 4 points over 90 seconds, below the 3 minute minimum
	points := makeTrack(start, 4, 30*time.Second, 0.0003, 4)

	assert.Empty(t, s.Segment(points))
}

func TestSegmentDiscardsParkedNoise(t *testing.T) {
	s := NewSegmenter(DefaultConfig())
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	// 10 points over 4.5 minutes barely moving: ~1m per step, well under
	// the 50m minimum movement
	points := makeTrack(start, 10, 30*time.Second, 0.00001, 0)

	assert.Empty(t, s.Segment(points))
}

func TestSegmentDiscardsSinglePoint(t *testing.T) {
	s := NewSegmenter(DefaultConfig())
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	points := makeTrack(start, 1, 30*time.Second, 0.0003, 4)

	assert.Empty(t, s.Segment(points))
}

func TestSegmentSkipsInvalidCoordinates(t *testing.T) {
	s := NewSegmenter(DefaultConfig())
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	points := makeTrack(start, 12, 30*time.Second, 0.0003, 4)
	points[5].Latitude = 95.0 // malformed ingestion row

	segments := s.Segment(points)
	require.Len(t, segments, 1)
	assert.Len(t, segments[0], 11)
}

func TestSegmentGapHalvesEvaluatedIndependently(t *testing.T) {
	s := NewSegmenter(DefaultConfig())
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	// First half qualifies; second half is too short after the gap split
	first := makeTrack(start, 10, 30*time.Second, 0.0003, 4)
	second := makeTrack(start.Add(20*time.Minute), 3, 30*time.Second, 0.0003, 4)
	points := append(first, second...)

	segments := s.Segment(points)
	require.Len(t, segments, 1)
	assert.Equal(t, first[0].RecordedAt, segments[0][0].RecordedAt)
}

func TestPathDistanceKm(t *testing.T) {
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	points := makeTrack(start, 10, 30*time.Second, 0.0003, 4)

	// 9 legs of 0.0003 deg latitude each, ~33.4m per leg
	dist := PathDistanceKm(points)
	assert.InDelta(t, 0.30, dist, 0.01)
}

func TestSegmentCustomThresholds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeGapThreshold = 1 * time.Minute
	cfg.MinTripDuration = 30 * time.Second
	s := NewSegmenter(cfg)

	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	first := makeTrack(start, 4, 20*time.Second, 0.0003, 4)
	second := makeTrack(start.Add(3*time.Minute), 4, 20*time.Second, 0.0003, 4)

	segments := s.Segment(append(first, second...))
	assert.Len(t, segments, 2)
}
