package classify

import (
	"context"

	"github.com/greenroute/carbon-backend-go/internal/models"
)

// Speed brackets (km/h) for the deterministic classifier
const (
	walkingMaxSpeed    = 6.0
	bicycleMaxSpeed    = 15.0
	motorcycleMaxSpeed = 35.0
	carMaxSpeed        = 80.0
)

// Stop/distance thresholds for the transit tie-breaks
const (
	transitStopRatio   = 0.20
	transitMaxDistance = 15.0 // km
	busMaxDistance     = 8.0  // km; shorter stop-heavy trips favor bus over mrt
)

// Heuristic confidences, deliberately below the AI tier's typical values
const (
	confWalking    = 0.85
	confBicycle    = 0.80
	confCar        = 0.80
	confRail       = 0.75
	confMotorcycle = 0.70
	confBus        = 0.70
	confTransitTie = 0.65
)

// HeuristicClassifier is the Tier A classifier: a deterministic speed/stop
// rule ladder that is always available and never fails.
type HeuristicClassifier struct{}

// NewHeuristicClassifier creates the deterministic baseline classifier.
func NewHeuristicClassifier() *HeuristicClassifier {
	return &HeuristicClassifier{}
}

// Classify assigns a mode from average speed, stop ratio, max speed,
// distance and volatility. It never returns an error.
func (c *HeuristicClassifier) Classify(_ context.Context, summary models.KinematicSummary, _ []models.GpsPoint) (*models.Verdict, error) {
	mode, confidence := c.classify(summary)
	return &models.Verdict{
		TransportMode: mode,
		Confidence:    confidence,
		Source:        SourceHeuristic,
	}, nil
}

func (c *HeuristicClassifier) classify(s models.KinematicSummary) (string, float64) {
	v := s.AvgSpeedKmh

	switch {
	case v <= walkingMaxSpeed:
		return models.ModeWalking, confWalking

	case v <= bicycleMaxSpeed:
		// Frequent stops at bicycle speeds look like a bus crawling
		// through traffic
		if s.StopRatio() > transitStopRatio {
			return models.ModeBus, confBus
		}
		return models.ModeBicycle, confBicycle

	case v <= motorcycleMaxSpeed:
		// Open-throttle pattern stays motorcycle even when stop-heavy
		if s.Volatility == models.VolatilityHigh && s.MaxSpeedKmh < carMaxSpeed {
			return models.ModeMotorcycle, confMotorcycle
		}
		// Short, regularly stopping trips in this band are transit
		if s.StopRatio() > transitStopRatio && s.TotalDistanceKm <= transitMaxDistance {
			if s.TotalDistanceKm <= busMaxDistance {
				return models.ModeBus, confTransitTie
			}
			return models.ModeMRT, confTransitTie
		}
		return models.ModeMotorcycle, confMotorcycle

	case v <= carMaxSpeed:
		return models.ModeCar, confCar

	default:
		// Sustained >80 km/h over GPS is rail territory
		return models.ModeMRT, confRail
	}
}
