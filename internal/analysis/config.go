package analysis

import "time"

// Config holds the segmentation thresholds. Immutable once constructed;
// tests inject alternate values instead of mutating globals.
type Config struct {
	TimeGapThreshold    time.Duration // gap that splits two segments
	MinTripDuration     time.Duration // shorter segments are discarded
	MinMovementMeters   float64       // segments moving less than this are parked/idle noise
	StopSpeedKmh        float64       // points below this speed count as stops
	SpeedDeltaKmh       float64       // consecutive-point delta that counts as volatile
	HighVolatilityRatio float64       // delta fraction above which volatility is high
	MedVolatilityRatio  float64       // delta fraction above which volatility is medium
}

// DefaultConfig returns the production segmentation thresholds.
func DefaultConfig() Config {
	return Config{
		TimeGapThreshold:    5 * time.Minute,
		MinTripDuration:     3 * time.Minute,
		MinMovementMeters:   50,
		StopSpeedKmh:        2,
		SpeedDeltaKmh:       10,
		HighVolatilityRatio: 0.30,
		MedVolatilityRatio:  0.10,
	}
}
