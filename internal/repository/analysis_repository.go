package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/greenroute/carbon-backend-go/internal/models"
)

// AnalysisRepository handles database operations for daily analyses
type AnalysisRepository struct {
	db *sql.DB
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

const analysisColumns = `id, subject_id, analysis_date, total_distance_km,
	total_duration_s, transport_mode, carbon_emission_kg, average_speed_kmh,
	confidence, trip_count, suggestions_json, route_details, created_at`

func scanAnalysis(scan func(dest ...interface{}) error) (*models.DailyAnalysis, error) {
	var a models.DailyAnalysis
	var suggestionsJSON string
	var routeDetails sql.NullString

	err := scan(
		&a.ID, &a.SubjectID, &a.AnalysisDate, &a.TotalDistanceKm,
		&a.TotalDurationS, &a.TransportMode, &a.CarbonEmissionKg, &a.AverageSpeedKmh,
		&a.Confidence, &a.TripCount, &suggestionsJSON, &routeDetails, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(suggestionsJSON), &a.Suggestions); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}
	if routeDetails.Valid {
		a.RouteDetails = routeDetails.String
	}
	return &a, nil
}

// GetByDate retrieves the analysis for one subject and date, or nil when
// none exists.
func (r *AnalysisRepository) GetByDate(subjectID, date string) (*models.DailyAnalysis, error) {
	query := "SELECT " + analysisColumns + ` FROM daily_analyses
		WHERE subject_id = ? AND analysis_date = ?
		ORDER BY id DESC LIMIT 1`

	a, err := scanAnalysis(r.db.QueryRow(query, subjectID, date).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return a, nil
}

// GetRange retrieves the analyses for one subject across [startDate, endDate]
// ordered by date.
func (r *AnalysisRepository) GetRange(subjectID, startDate, endDate string) ([]models.DailyAnalysis, error) {
	query := "SELECT " + analysisColumns + ` FROM daily_analyses
		WHERE subject_id = ? AND analysis_date >= ? AND analysis_date <= ?
		ORDER BY analysis_date`

	rows, err := r.db.Query(query, subjectID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	var analyses []models.DailyAnalysis
	for rows.Next() {
		a, err := scanAnalysis(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return analyses, nil
}

// InsertTx inserts an analysis inside an existing transaction.
func (r *AnalysisRepository) InsertTx(tx *sql.Tx, a *models.DailyAnalysis) error {
	suggestions := a.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	suggestionsJSON, err := json.Marshal(suggestions)
	if err != nil {
		return fmt.Errorf("failed to encode suggestions: %w", err)
	}

	result, err := tx.Exec(`INSERT INTO daily_analyses (
			subject_id, analysis_date, total_distance_km, total_duration_s,
			transport_mode, carbon_emission_kg, average_speed_kmh,
			confidence, trip_count, suggestions_json, route_details, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		a.SubjectID, a.AnalysisDate, a.TotalDistanceKm, a.TotalDurationS,
		a.TransportMode, a.CarbonEmissionKg, a.AverageSpeedKmh,
		a.Confidence, a.TripCount, string(suggestionsJSON), nullable(a.RouteDetails),
	)
	if err != nil {
		return fmt.Errorf("failed to insert analysis: %w", err)
	}

	id, err := result.LastInsertId()
	if err == nil {
		a.ID = id
	}
	return nil
}

// DeleteByDateTx removes the analyses for one subject and date inside an
// existing transaction.
func (r *AnalysisRepository) DeleteByDateTx(tx *sql.Tx, subjectID, date string) error {
	if _, err := tx.Exec("DELETE FROM daily_analyses WHERE subject_id = ? AND analysis_date = ?", subjectID, date); err != nil {
		return fmt.Errorf("failed to delete analyses: %w", err)
	}
	return nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
