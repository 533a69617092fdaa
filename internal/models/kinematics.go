package models

// Speed volatility labels
const (
	VolatilityStable = "stable"
	VolatilityMedium = "medium"
	VolatilityHigh   = "high"
)

// KinematicSummary holds the per-segment motion statistics fed to the
// transport classifiers.
type KinematicSummary struct {
	TotalDistanceKm float64 `json:"total_distance_km"`
	DurationS       int64   `json:"duration_s"`
	AvgSpeedKmh     float64 `json:"avg_speed_kmh"`
	MaxSpeedKmh     float64 `json:"max_speed_kmh"`
	MinSpeedKmh     float64 `json:"min_speed_kmh"`
	SpeedStdDev     float64 `json:"speed_std_dev"`
	StopCount       int     `json:"stop_count"`
	PointCount      int     `json:"point_count"`
	Volatility      string  `json:"volatility"` // stable, medium, high
}

// StopRatio returns the fraction of points flagged as stops.
func (k KinematicSummary) StopRatio() float64 {
	if k.PointCount == 0 {
		return 0
	}
	return float64(k.StopCount) / float64(k.PointCount)
}

// Verdict is the classification result for one segment.
type Verdict struct {
	TransportMode    string   `json:"transport_mode"`
	Confidence       float64  `json:"confidence"`
	CarbonEmissionKg float64  `json:"carbon_emission_kg"`
	Suggestions      []string `json:"suggestions,omitempty"`
	Source           string   `json:"source"` // heuristic or ai
}
