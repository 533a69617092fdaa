package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/greenroute/carbon-backend-go/internal/analysis"
	"github.com/greenroute/carbon-backend-go/internal/carbon"
	"github.com/greenroute/carbon-backend-go/internal/classify"
	"github.com/greenroute/carbon-backend-go/internal/database"
	"github.com/greenroute/carbon-backend-go/internal/models"
	"github.com/greenroute/carbon-backend-go/internal/repository"
)

// ErrNoData indicates that no GPS points exist for the requested date. It
// is a structured result, not a failure: callers decide the UI treatment.
var ErrNoData = errors.New("no gps data for requested date")

// MaxRangeDays caps the size of one range-analysis call.
const MaxRangeDays = 30

const dateLayout = "2006-01-02"

// AnalysisService is the orchestrator: it turns a subject's raw points for
// one date into Trip rows and one DailyAnalysis row, transactionally, with
// idempotent re-analysis.
type AnalysisService struct {
	db         *sql.DB
	points     *repository.PointRepository
	trips      *repository.TripRepository
	analyses   *repository.AnalysisRepository
	segmenter  *analysis.Segmenter
	summarizer *analysis.Summarizer
	classifier classify.Classifier
	tripTypes  analysis.TripTypeClassifier
	estimator  *carbon.Estimator
	location   *time.Location

	mu    sync.Mutex
	locks map[string]*sync.Mutex // per (subject, date) write serialization
}

// NewAnalysisService wires the orchestrator from its collaborators.
func NewAnalysisService(
	db *sql.DB,
	points *repository.PointRepository,
	trips *repository.TripRepository,
	analyses *repository.AnalysisRepository,
	cfg analysis.Config,
	classifier classify.Classifier,
	tripTypes analysis.TripTypeClassifier,
	estimator *carbon.Estimator,
	location *time.Location,
) *AnalysisService {
	if location == nil {
		location = time.Local
	}
	return &AnalysisService{
		db:         db,
		points:     points,
		trips:      trips,
		analyses:   analyses,
		segmenter:  analysis.NewSegmenter(cfg),
		summarizer: analysis.NewSummarizer(cfg),
		classifier: classifier,
		tripTypes:  tripTypes,
		estimator:  estimator,
		location:   location,
		locks:      make(map[string]*sync.Mutex),
	}
}

// dateLock returns the mutex serializing writes for one (subject, date).
// Two concurrent re-analyses of the same day must not interleave their
// delete and insert phases.
func (s *AnalysisService) dateLock(subjectID, date string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := subjectID + "|" + date
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

// Analyze processes one subject's points for one date. When an analysis
// already exists and force is false, the stored result is returned without
// recomputation. force deletes and recreates the date's rows inside the
// same transaction as the rewrite.
func (s *AnalysisService) Analyze(ctx context.Context, subjectID, date string, force bool) (*models.DailyAnalysis, error) {
	day, err := time.ParseInLocation(dateLayout, date, s.location)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	lock := s.dateLock(subjectID, date)
	lock.Lock()
	defer lock.Unlock()

	if !force {
		existing, err := s.analyses.GetByDate(subjectID, date)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing analysis: %w", err)
		}
		if existing != nil {
			return existing, nil
		}
	}

	dayStart := day.Unix()
	dayEnd := day.AddDate(0, 0, 1).Unix()

	points, err := s.points.GetPointsInRange(subjectID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch points: %w", err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrNoData, subjectID, date)
	}

	segments := s.segmenter.Segment(points)
	log.Printf("[AnalysisService] %s %s: %d points, %d candidate trips",
		subjectID, date, len(points), len(segments))

	trips, suggestions, err := s.buildTrips(ctx, subjectID, date, segments)
	if err != nil {
		return nil, err
	}

	daily := s.aggregateDay(subjectID, date, trips, suggestions)

	err = database.Transaction(s.db, func(tx *sql.Tx) error {
		if err := s.trips.DeleteByDateTx(tx, subjectID, date); err != nil {
			return err
		}
		if err := s.analyses.DeleteByDateTx(tx, subjectID, date); err != nil {
			return err
		}
		for i := range trips {
			if err := s.trips.InsertTx(tx, &trips[i]); err != nil {
				return err
			}
		}
		return s.analyses.InsertTx(tx, daily)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist analysis for %s: %w", date, err)
	}

	return daily, nil
}

// buildTrips runs each qualifying segment through the summarizer,
// classifier, trip type derivation and carbon estimation.
func (s *AnalysisService) buildTrips(ctx context.Context, subjectID, date string, segments [][]models.GpsPoint) ([]models.Trip, []string, error) {
	var trips []models.Trip
	var suggestions []string

	for _, seg := range segments {
		summary := s.summarizer.Summarize(seg)

		verdict, err := s.classifier.Classify(ctx, summary, seg)
		if err != nil {
			// The fallback decorator absorbs AI failures; an error here
			// means even the baseline could not run.
			return nil, nil, fmt.Errorf("classification failed: %w", err)
		}

		emission := verdict.CarbonEmissionKg
		if verdict.Source != classify.SourceAI || emission <= 0 {
			emission = s.estimator.Estimate(verdict.TransportMode, summary.TotalDistanceKm)
		}

		first, last := seg[0], seg[len(seg)-1]
		trips = append(trips, models.Trip{
			SubjectID:        subjectID,
			Date:             date,
			StartTime:        first.RecordedAt,
			EndTime:          last.RecordedAt,
			DurationSeconds:  summary.DurationS,
			StartLat:         first.Latitude,
			StartLng:         first.Longitude,
			EndLat:           last.Latitude,
			EndLng:           last.Longitude,
			DistanceKm:       summary.TotalDistanceKm,
			AvgSpeedKmh:      summary.AvgSpeedKmh,
			MaxSpeedKmh:      summary.MaxSpeedKmh,
			TransportMode:    verdict.TransportMode,
			TripType:         s.tripTypes.TripType(time.Unix(first.RecordedAt, 0).In(s.location)),
			Confidence:       verdict.Confidence,
			CarbonEmissionKg: emission,
		})
		suggestions = append(suggestions, verdict.Suggestions...)
	}

	return trips, suggestions, nil
}

// aggregateDay rolls the day's trips into one DailyAnalysis. The dominant
// mode is the one covering the most distance, matching how a single trip's
// dominant mode is meant: one label for the whole unit.
func (s *AnalysisService) aggregateDay(subjectID, date string, trips []models.Trip, suggestions []string) *models.DailyAnalysis {
	daily := &models.DailyAnalysis{
		SubjectID:     subjectID,
		AnalysisDate:  date,
		TransportMode: models.ModeUnknown,
		TripCount:     len(trips),
		Suggestions:   dedupe(suggestions),
	}

	if len(trips) == 0 {
		return daily
	}

	modeDistances := make(map[string]float64)
	var confidenceSum float64
	for _, t := range trips {
		daily.TotalDistanceKm += t.DistanceKm
		daily.TotalDurationS += t.DurationSeconds
		daily.CarbonEmissionKg += t.CarbonEmissionKg
		confidenceSum += t.Confidence
		modeDistances[t.TransportMode] += t.DistanceKm
	}

	maxDistance := -1.0
	for mode, distance := range modeDistances {
		if distance > maxDistance {
			maxDistance = distance
			daily.TransportMode = mode
		}
	}

	if daily.TotalDurationS > 0 {
		daily.AverageSpeedKmh = daily.TotalDistanceKm / (float64(daily.TotalDurationS) / 3600.0)
	}
	daily.Confidence = confidenceSum / float64(len(trips))

	return daily
}

// AnalyzeRange analyzes each date in [startDate, endDate] independently.
// A failing date is recorded and the range continues; committed dates
// survive a canceled context.
func (s *AnalysisService) AnalyzeRange(ctx context.Context, subjectID, startDate, endDate string, force bool) (*models.RangeResult, error) {
	start, err := time.ParseInLocation(dateLayout, startDate, s.location)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.ParseInLocation(dateLayout, endDate, s.location)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("start date must be before end date")
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days > MaxRangeDays {
		return nil, fmt.Errorf("range of %d days exceeds the maximum of %d", days, MaxRangeDays)
	}

	runID := uuid.NewString()
	log.Printf("[AnalysisService] Range run %s: %s %s..%s (%d days, force=%v)",
		runID, subjectID, startDate, endDate, days, force)

	result := &models.RangeResult{
		SubjectID: subjectID,
		Analyses:  make(map[string]*models.DailyAnalysis),
		Errors:    make(map[string]string),
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := day.Format(dateLayout)

		if err := ctx.Err(); err != nil {
			result.Errors[date] = "canceled"
			continue
		}

		daily, err := s.Analyze(ctx, subjectID, date, force)
		if err != nil {
			result.Errors[date] = err.Error()
			continue
		}
		result.Analyses[date] = daily
	}

	log.Printf("[AnalysisService] Range run %s completed: %d analyzed, %d failed",
		runID, len(result.Analyses), len(result.Errors))
	return result, nil
}
