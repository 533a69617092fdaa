package analysis

import (
	"github.com/greenroute/carbon-backend-go/internal/models"
	"github.com/greenroute/carbon-backend-go/internal/spatial"
)

// Segmenter partitions a time-ordered stream of GPS points into trip
// segments using a time-gap threshold, then filters out non-trips.
type Segmenter struct {
	cfg Config
}

// NewSegmenter creates a new segmenter with the given thresholds.
func NewSegmenter(cfg Config) *Segmenter {
	return &Segmenter{cfg: cfg}
}

// Segment walks the points and emits candidate trips in chronological order.
// The caller guarantees time ordering and date scoping; empty input yields
// empty output. Points with out-of-range coordinates are skipped rather
// than failing the whole segment.
func (s *Segmenter) Segment(points []models.GpsPoint) [][]models.GpsPoint {
	if len(points) == 0 {
		return nil
	}

	gapSeconds := int64(s.cfg.TimeGapThreshold.Seconds())

	var raw [][]models.GpsPoint
	var current []models.GpsPoint

	for _, p := range points {
		if !p.Valid() {
			continue
		}

		if len(current) == 0 {
			current = []models.GpsPoint{p}
			continue
		}

		gap := p.RecordedAt - current[len(current)-1].RecordedAt
		if gap > gapSeconds {
			raw = append(raw, current)
			current = []models.GpsPoint{p}
		} else {
			current = append(current, p)
		}
	}
	if len(current) > 0 {
		raw = append(raw, current)
	}

	var segments [][]models.GpsPoint
	for _, seg := range raw {
		if s.qualifies(seg) {
			segments = append(segments, seg)
		}
	}
	return segments
}

// qualifies applies the non-trip filters: at least 2 points, minimum
// duration, minimum cumulative movement.
func (s *Segmenter) qualifies(seg []models.GpsPoint) bool {
	if len(seg) < 2 {
		return false
	}

	duration := seg[len(seg)-1].RecordedAt - seg[0].RecordedAt
	if duration < int64(s.cfg.MinTripDuration.Seconds()) {
		return false
	}

	distanceM := PathDistanceKm(seg) * 1000.0
	return distanceM >= s.cfg.MinMovementMeters
}

// PathDistanceKm returns the cumulative great-circle path distance of a
// segment in kilometers.
func PathDistanceKm(seg []models.GpsPoint) float64 {
	var total float64
	for i := 1; i < len(seg); i++ {
		total += spatial.DistanceKm(
			seg[i-1].Latitude, seg[i-1].Longitude,
			seg[i].Latitude, seg[i].Longitude,
		)
	}
	return total
}
