package models

// GpsPoint represents a raw GPS sample recorded by a field device.
// Points are immutable once recorded; the analysis engine reads them only.
type GpsPoint struct {
	ID         int64   `json:"id" db:"id"`
	SubjectID  string  `json:"subject_id" db:"subject_id"`
	Latitude   float64 `json:"latitude" db:"latitude"`
	Longitude  float64 `json:"longitude" db:"longitude"`
	RecordedAt int64   `json:"recorded_at" db:"recorded_at"` // Unix timestamp in seconds
	Speed      float64 `json:"speed,omitempty" db:"speed"`   // km/h, 0 when the device did not report it
	Accuracy   float64 `json:"accuracy,omitempty" db:"accuracy"`
	Altitude   float64 `json:"altitude,omitempty" db:"altitude"`
	Bearing    float64 `json:"bearing,omitempty" db:"bearing"`
}

// Valid reports whether the point's coordinates are inside the WGS84 range.
func (p GpsPoint) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}
