package carbon

import "github.com/greenroute/carbon-backend-go/internal/models"

// Factors maps transport modes to emission factors in kg CO2 per km.
// Unknown modes fall back to Default rather than failing.
type Factors struct {
	PerMode map[string]float64
	Default float64

	// BusBaseline is the factor used for potential-saving what-if sums.
	BusBaseline float64
	// CarBaseline anchors the eco-score normalization.
	CarBaseline float64
	// KgPerTreeYear converts emission to an equivalent-trees estimate.
	KgPerTreeYear float64
}

// DefaultFactors returns the production emission factor table.
func DefaultFactors() Factors {
	return Factors{
		PerMode: map[string]float64{
			models.ModeWalking:    0,
			models.ModeBicycle:    0,
			models.ModeMotorcycle: 0.095,
			models.ModeCar:        0.21,
			models.ModeBus:        0.089,
			models.ModeMRT:        0.033,
			models.ModeTrain:      0.041,
		},
		Default:       0.15,
		BusBaseline:   0.089,
		CarBaseline:   0.21,
		KgPerTreeYear: 21.77,
	}
}

// Estimator computes trip emission from distance and mode.
type Estimator struct {
	factors Factors
}

// NewEstimator creates an estimator with the given factor table.
func NewEstimator(factors Factors) *Estimator {
	return &Estimator{factors: factors}
}

// Factor returns the emission factor for a mode in kg CO2/km.
func (e *Estimator) Factor(mode string) float64 {
	if f, ok := e.factors.PerMode[mode]; ok {
		return f
	}
	return e.factors.Default
}

// Estimate returns the emission in kg CO2 for distanceKm traveled by mode.
func (e *Estimator) Estimate(mode string, distanceKm float64) float64 {
	if distanceKm < 0 {
		distanceKm = 0
	}
	return distanceKm * e.Factor(mode)
}

// BusEquivalent returns the hypothetical emission had the distance been
// traveled by bus.
func (e *Estimator) BusEquivalent(distanceKm float64) float64 {
	if distanceKm < 0 {
		distanceKm = 0
	}
	return distanceKm * e.factors.BusBaseline
}

// EcoScore normalizes a period's emission-per-km against the car baseline
// onto a 0-100 scale. Zero distance scores 100.
func (e *Estimator) EcoScore(emissionKg, distanceKm float64) float64 {
	if distanceKm <= 0 {
		return 100
	}

	perKm := emissionKg / distanceKm
	score := 100 - perKm/e.factors.CarBaseline*100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// TreesEquivalent returns how many tree-years would absorb emissionKg.
func (e *Estimator) TreesEquivalent(emissionKg float64) float64 {
	if emissionKg <= 0 {
		return 0
	}
	return emissionKg / e.factors.KgPerTreeYear
}
