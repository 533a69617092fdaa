package models

// Transport mode constants
const (
	ModeWalking    = "walking"
	ModeBicycle    = "bicycle"
	ModeMotorcycle = "motorcycle"
	ModeCar        = "car"
	ModeBus        = "bus"
	ModeMRT        = "mrt"
	ModeTrain      = "train"
	ModeUnknown    = "unknown"
)

// TransportModes lists every recognized mode.
var TransportModes = []string{
	ModeWalking, ModeBicycle, ModeMotorcycle, ModeCar,
	ModeBus, ModeMRT, ModeTrain, ModeUnknown,
}

// IsValidTransportMode reports whether mode is one of the recognized modes.
func IsValidTransportMode(mode string) bool {
	for _, m := range TransportModes {
		if m == mode {
			return true
		}
	}
	return false
}

// TripType constants
const (
	TripTypeToWork   = "to_work"
	TripTypeFromWork = "from_work"
	TripTypeOther    = "other"
)
