package models

// Trip represents one continuous movement episode materialized from a
// qualifying GPS segment, with its classified mode
type Trip struct {
	ID int64 `json:"id" db:"id"`

	SubjectID string `json:"subject_id" db:"subject_id"`
	Date      string `json:"date" db:"date"` // YYYY-MM-DD

	// Temporal info
	StartTime       int64 `json:"start_time" db:"start_time"` // Unix timestamp
	EndTime         int64 `json:"end_time" db:"end_time"`     // Unix timestamp
	DurationSeconds int64 `json:"duration_seconds" db:"duration_seconds"`

	// Endpoints
	StartLat float64 `json:"start_lat" db:"start_lat"`
	StartLng float64 `json:"start_lng" db:"start_lng"`
	EndLat   float64 `json:"end_lat" db:"end_lat"`
	EndLng   float64 `json:"end_lng" db:"end_lng"`

	// Characteristics
	DistanceKm       float64 `json:"distance_km" db:"distance_km"`
	AvgSpeedKmh      float64 `json:"avg_speed_kmh" db:"avg_speed_kmh"`
	MaxSpeedKmh      float64 `json:"max_speed_kmh" db:"max_speed_kmh"`
	TransportMode    string  `json:"transport_mode" db:"transport_mode"`
	TripType         string  `json:"trip_type" db:"trip_type"` // to_work, from_work, other
	Confidence       float64 `json:"confidence" db:"confidence"`
	CarbonEmissionKg float64 `json:"carbon_emission_kg" db:"carbon_emission_kg"`

	CreatedAt string `json:"created_at,omitempty" db:"created_at"`
}

// TripFilter represents filter parameters for querying trips
type TripFilter struct {
	SubjectID     string  `form:"subjectId"`
	StartTime     int64   `form:"startTime"` // Unix timestamp
	EndTime       int64   `form:"endTime"`   // Unix timestamp
	TransportMode string  `form:"transportMode"`
	TripType      string  `form:"tripType"`
	MinDistance   float64 `form:"minDistance"`
	Page          int     `form:"page"`
	PageSize      int     `form:"pageSize"`
}

// TripsResponse represents a paginated response of trips
type TripsResponse struct {
	Data       []Trip `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}
