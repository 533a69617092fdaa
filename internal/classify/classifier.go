package classify

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/greenroute/carbon-backend-go/internal/models"
)

// Classifier assigns a single dominant transport mode to a segment given
// its kinematic summary and raw trajectory.
type Classifier interface {
	Classify(ctx context.Context, summary models.KinematicSummary, points []models.GpsPoint) (*models.Verdict, error)
}

// Verdict sources
const (
	SourceHeuristic = "heuristic"
	SourceAI        = "ai"
)

// ContentHash returns a stable hash of a point set, used as the cache key
// for AI classifications. Unchanged input points hash to the same key, so
// re-analysis of an unchanged day never repeats the AI call.
func ContentHash(points []models.GpsPoint) string {
	h := sha256.New()
	for _, p := range points {
		fmt.Fprintf(h, "%s|%d|%.6f|%.6f\n", p.SubjectID, p.RecordedAt, p.Latitude, p.Longitude)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// SampleTrajectory returns at most max points evenly spaced across the
// segment, always keeping the first and last point.
func SampleTrajectory(points []models.GpsPoint, max int) []models.GpsPoint {
	if max <= 0 || len(points) <= max {
		return points
	}

	sampled := make([]models.GpsPoint, 0, max)
	step := float64(len(points)-1) / float64(max-1)
	for i := 0; i < max; i++ {
		idx := int(float64(i)*step + 0.5)
		if idx >= len(points) {
			idx = len(points) - 1
		}
		sampled = append(sampled, points[idx])
	}
	return sampled
}
