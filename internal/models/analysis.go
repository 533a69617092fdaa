package models

// DailyAnalysis summarizes one subject's movement and emission for one day.
// Exactly one row per (subject, date); re-analysis replaces the row wholesale.
type DailyAnalysis struct {
	ID int64 `json:"id" db:"id"`

	SubjectID    string `json:"subject_id" db:"subject_id"`
	AnalysisDate string `json:"analysis_date" db:"analysis_date"` // YYYY-MM-DD

	TotalDistanceKm  float64 `json:"total_distance_km" db:"total_distance_km"`
	TotalDurationS   int64   `json:"total_duration_s" db:"total_duration_s"`
	TransportMode    string  `json:"transport_mode" db:"transport_mode"` // dominant mode of the day
	CarbonEmissionKg float64 `json:"carbon_emission_kg" db:"carbon_emission_kg"`
	AverageSpeedKmh  float64 `json:"average_speed_kmh" db:"average_speed_kmh"`
	Confidence       float64 `json:"confidence" db:"confidence"`
	TripCount        int     `json:"trip_count" db:"trip_count"`

	Suggestions  []string `json:"suggestions" db:"-"`
	RouteDetails string   `json:"route_details,omitempty" db:"route_details"` // optional JSON blob

	CreatedAt string `json:"created_at,omitempty" db:"created_at"`
}

// PeriodSummary aggregates a range of daily analyses. Computed on demand,
// never persisted.
type PeriodSummary struct {
	SubjectID string `json:"subject_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	DayCount  int    `json:"day_count"`

	TotalDistanceKm  float64 `json:"total_distance_km"`
	TotalEmissionKg  float64 `json:"total_emission_kg"`
	DominantMode     string  `json:"dominant_mode"`
	ModeHistogram    map[string]int `json:"mode_histogram"` // days per dominant mode

	PotentialSavingKg  float64 `json:"potential_saving_kg"`
	PotentialSavingPct float64 `json:"potential_saving_pct"`
	EcoScore           float64 `json:"eco_score"` // 0-100, car baseline
	TreesEquivalent    float64 `json:"trees_equivalent"`

	Suggestions []string `json:"suggestions"`
}

// RangeResult reports the outcome of a date-range analysis. Each date maps
// to either a completed analysis or an error message; one bad day never
// aborts the rest of the range.
type RangeResult struct {
	SubjectID string                    `json:"subject_id"`
	Analyses  map[string]*DailyAnalysis `json:"analyses"`
	Errors    map[string]string         `json:"errors,omitempty"`
}
