package classify

import (
	"context"
	"log"

	"github.com/greenroute/carbon-backend-go/internal/models"
)

// FallbackClassifier tries the primary classifier once and degrades to the
// fallback on any failure. Degradation is never surfaced as an error; it
// only shows as the fallback's lower confidence.
type FallbackClassifier struct {
	primary  Classifier
	fallback Classifier
}

// NewFallbackClassifier composes a primary classifier with a fallback.
func NewFallbackClassifier(primary, fallback Classifier) *FallbackClassifier {
	return &FallbackClassifier{primary: primary, fallback: fallback}
}

// Classify returns the primary verdict when available, otherwise the
// fallback verdict. The primary gets exactly one attempt, no retries.
func (c *FallbackClassifier) Classify(ctx context.Context, summary models.KinematicSummary, points []models.GpsPoint) (*models.Verdict, error) {
	if c.primary != nil {
		verdict, err := c.primary.Classify(ctx, summary, points)
		if err == nil {
			return verdict, nil
		}
		log.Printf("[FallbackClassifier] Primary classifier degraded: %v", err)
	}
	return c.fallback.Classify(ctx, summary, points)
}
