package analysis

import (
	"time"

	"github.com/greenroute/carbon-backend-go/internal/models"
)

// TripTypeClassifier derives a trip purpose label from a trip's temporal
// context. Implementations may later use geofence membership; the default
// uses time-of-day windows only.
type TripTypeClassifier interface {
	TripType(startTime time.Time) string
}

// TimeOfDayClassifier labels trips by commute-hour windows.
type TimeOfDayClassifier struct {
	Location *time.Location
}

// NewTimeOfDayClassifier creates the default time-of-day trip type classifier.
func NewTimeOfDayClassifier(loc *time.Location) *TimeOfDayClassifier {
	if loc == nil {
		loc = time.Local
	}
	return &TimeOfDayClassifier{Location: loc}
}

// TripType returns to_work for 06:00-10:00 starts, from_work for
// 16:00-20:00 starts, other otherwise.
func (c *TimeOfDayClassifier) TripType(startTime time.Time) string {
	hour := startTime.In(c.Location).Hour()
	switch {
	case hour >= 6 && hour < 10:
		return models.TripTypeToWork
	case hour >= 16 && hour < 20:
		return models.TripTypeFromWork
	default:
		return models.TripTypeOther
	}
}
