package service

import (
	"fmt"
	"time"

	"github.com/greenroute/carbon-backend-go/internal/carbon"
	"github.com/greenroute/carbon-backend-go/internal/models"
	"github.com/greenroute/carbon-backend-go/internal/repository"
)

// SummaryService rolls stored daily analyses into period summaries.
// Summaries are always recomputed, never persisted.
type SummaryService struct {
	analyses  *repository.AnalysisRepository
	estimator *carbon.Estimator
}

// NewSummaryService creates a new summary service.
func NewSummaryService(analyses *repository.AnalysisRepository, estimator *carbon.Estimator) *SummaryService {
	return &SummaryService{analyses: analyses, estimator: estimator}
}

// Summarize aggregates the analyses for [startDate, endDate] into totals, a
// per-mode day histogram, the potential bus-saving estimate and an
// eco-score.
func (s *SummaryService) Summarize(subjectID, startDate, endDate string) (*models.PeriodSummary, error) {
	if _, err := time.Parse(dateLayout, startDate); err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	if _, err := time.Parse(dateLayout, endDate); err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	analyses, err := s.analyses.GetRange(subjectID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load analyses: %w", err)
	}

	summary := &models.PeriodSummary{
		SubjectID:     subjectID,
		StartDate:     startDate,
		EndDate:       endDate,
		DayCount:      len(analyses),
		ModeHistogram: make(map[string]int),
	}

	var suggestions []string
	for _, a := range analyses {
		summary.TotalDistanceKm += a.TotalDistanceKm
		summary.TotalEmissionKg += a.CarbonEmissionKg
		summary.ModeHistogram[a.TransportMode]++
		suggestions = append(suggestions, a.Suggestions...)
	}

	maxDays := 0
	for mode, days := range summary.ModeHistogram {
		if days > maxDays {
			maxDays = days
			summary.DominantMode = mode
		}
	}
	if summary.DominantMode == "" {
		summary.DominantMode = models.ModeUnknown
	}

	// What-if: the whole period traveled by bus instead
	hypothetical := s.estimator.BusEquivalent(summary.TotalDistanceKm)
	saving := summary.TotalEmissionKg - hypothetical
	if saving < 0 {
		saving = 0
	}
	summary.PotentialSavingKg = saving
	if summary.TotalEmissionKg > 0 {
		summary.PotentialSavingPct = saving / summary.TotalEmissionKg * 100
	}

	summary.EcoScore = s.estimator.EcoScore(summary.TotalEmissionKg, summary.TotalDistanceKm)
	summary.TreesEquivalent = s.estimator.TreesEquivalent(summary.TotalEmissionKg)

	summary.Suggestions = dedupe(suggestions)
	if summary.TotalEmissionKg > 0 {
		summary.Suggestions = append(summary.Suggestions, fmt.Sprintf(
			"Your %.2f kg CO2 this period equals what %.1f trees absorb in a year",
			summary.TotalEmissionKg, summary.TreesEquivalent))
	}

	return summary, nil
}

// dedupe removes duplicate suggestion strings, keeping first occurrence
// order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
