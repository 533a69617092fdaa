package analysis

import (
	"github.com/greenroute/carbon-backend-go/internal/models"
	"github.com/greenroute/carbon-backend-go/internal/spatial"
	"github.com/greenroute/carbon-backend-go/internal/stats"
)

// Summarizer computes per-segment kinematic statistics.
type Summarizer struct {
	cfg Config
}

// NewSummarizer creates a new kinematics summarizer.
func NewSummarizer(cfg Config) *Summarizer {
	return &Summarizer{cfg: cfg}
}

// Summarize computes distance, duration, speed statistics, stop count and a
// speed volatility label for one segment. The segment must be non-empty and
// time-ordered.
func (s *Summarizer) Summarize(seg []models.GpsPoint) models.KinematicSummary {
	summary := models.KinematicSummary{PointCount: len(seg)}
	if len(seg) == 0 {
		summary.Volatility = models.VolatilityStable
		return summary
	}

	summary.TotalDistanceKm = PathDistanceKm(seg)
	summary.DurationS = seg[len(seg)-1].RecordedAt - seg[0].RecordedAt

	if summary.DurationS > 0 {
		summary.AvgSpeedKmh = summary.TotalDistanceKm / (float64(summary.DurationS) / 3600.0)
	}

	speeds := s.pointSpeeds(seg)
	summary.MaxSpeedKmh = stats.Max(speeds)
	summary.MinSpeedKmh = stats.Min(speeds)
	summary.SpeedStdDev = stats.StdDev(speeds)

	for _, v := range speeds {
		if v < s.cfg.StopSpeedKmh {
			summary.StopCount++
		}
	}

	summary.Volatility = s.volatility(speeds)
	return summary
}

// pointSpeeds returns one speed sample per point in km/h. The device speed
// is used when present; absent or zero speeds fall back to the
// distance/time-delta of the leg arriving at the point.
func (s *Summarizer) pointSpeeds(seg []models.GpsPoint) []float64 {
	speeds := make([]float64, len(seg))
	for i, p := range seg {
		if p.Speed > 0 {
			speeds[i] = p.Speed
			continue
		}
		if i == 0 {
			speeds[i] = 0
			continue
		}
		dt := p.RecordedAt - seg[i-1].RecordedAt
		if dt <= 0 {
			speeds[i] = 0
			continue
		}
		legKm := spatial.DistanceKm(
			seg[i-1].Latitude, seg[i-1].Longitude,
			p.Latitude, p.Longitude,
		)
		speeds[i] = legKm / (float64(dt) / 3600.0)
	}
	return speeds
}

// volatility labels the segment by the fraction of consecutive speed deltas
// exceeding the configured threshold.
func (s *Summarizer) volatility(speeds []float64) string {
	if len(speeds) < 2 {
		return models.VolatilityStable
	}

	volatile := 0
	for i := 1; i < len(speeds); i++ {
		delta := speeds[i] - speeds[i-1]
		if delta < 0 {
			delta = -delta
		}
		if delta > s.cfg.SpeedDeltaKmh {
			volatile++
		}
	}

	ratio := float64(volatile) / float64(len(speeds)-1)
	switch {
	case ratio > s.cfg.HighVolatilityRatio:
		return models.VolatilityHigh
	case ratio > s.cfg.MedVolatilityRatio:
		return models.VolatilityMedium
	default:
		return models.VolatilityStable
	}
}
