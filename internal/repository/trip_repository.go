package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/greenroute/carbon-backend-go/internal/models"
)

// TripRepository handles database operations for trips
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// GetTrips retrieves trips with filtering and pagination
func (r *TripRepository) GetTrips(filter models.TripFilter) ([]models.Trip, int64, error) {
	query := `SELECT id, subject_id, date, start_time, end_time, duration_seconds,
		start_lat, start_lng, end_lat, end_lng, distance_km,
		avg_speed_kmh, max_speed_kmh, transport_mode, trip_type,
		confidence, carbon_emission_kg, created_at
		FROM trips`

	var conditions []string
	var args []interface{}

	if filter.SubjectID != "" {
		conditions = append(conditions, "subject_id = ?")
		args = append(args, filter.SubjectID)
	}
	if filter.StartTime > 0 {
		conditions = append(conditions, "start_time >= ?")
		args = append(args, filter.StartTime)
	}
	if filter.EndTime > 0 {
		conditions = append(conditions, "end_time <= ?")
		args = append(args, filter.EndTime)
	}
	if filter.TransportMode != "" {
		conditions = append(conditions, "transport_mode = ?")
		args = append(args, filter.TransportMode)
	}
	if filter.TripType != "" {
		conditions = append(conditions, "trip_type = ?")
		args = append(args, filter.TripType)
	}
	if filter.MinDistance > 0 {
		conditions = append(conditions, "distance_km >= ?")
		args = append(args, filter.MinDistance)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM trips"
	if len(conditions) > 0 {
		countQuery += " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}

	offset := (filter.Page - 1) * filter.PageSize
	query += " ORDER BY start_time DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(
			&t.ID, &t.SubjectID, &t.Date, &t.StartTime, &t.EndTime, &t.DurationSeconds,
			&t.StartLat, &t.StartLng, &t.EndLat, &t.EndLng, &t.DistanceKm,
			&t.AvgSpeedKmh, &t.MaxSpeedKmh, &t.TransportMode, &t.TripType,
			&t.Confidence, &t.CarbonEmissionKg, &t.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, t)
	}

	return trips, total, nil
}

// GetTripByID retrieves a single trip by ID
func (r *TripRepository) GetTripByID(id int64) (*models.Trip, error) {
	query := `SELECT id, subject_id, date, start_time, end_time, duration_seconds,
		start_lat, start_lng, end_lat, end_lng, distance_km,
		avg_speed_kmh, max_speed_kmh, transport_mode, trip_type,
		confidence, carbon_emission_kg, created_at
		FROM trips WHERE id = ?`

	var t models.Trip
	err := r.db.QueryRow(query, id).Scan(
		&t.ID, &t.SubjectID, &t.Date, &t.StartTime, &t.EndTime, &t.DurationSeconds,
		&t.StartLat, &t.StartLng, &t.EndLat, &t.EndLng, &t.DistanceKm,
		&t.AvgSpeedKmh, &t.MaxSpeedKmh, &t.TransportMode, &t.TripType,
		&t.Confidence, &t.CarbonEmissionKg, &t.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return &t, nil
}

// GetTripsByDate retrieves all trips for one subject and date in
// chronological order.
func (r *TripRepository) GetTripsByDate(subjectID, date string) ([]models.Trip, error) {
	query := `SELECT id, subject_id, date, start_time, end_time, duration_seconds,
		start_lat, start_lng, end_lat, end_lng, distance_km,
		avg_speed_kmh, max_speed_kmh, transport_mode, trip_type,
		confidence, carbon_emission_kg, created_at
		FROM trips WHERE subject_id = ? AND date = ? ORDER BY start_time`

	rows, err := r.db.Query(query, subjectID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(
			&t.ID, &t.SubjectID, &t.Date, &t.StartTime, &t.EndTime, &t.DurationSeconds,
			&t.StartLat, &t.StartLng, &t.EndLat, &t.EndLng, &t.DistanceKm,
			&t.AvgSpeedKmh, &t.MaxSpeedKmh, &t.TransportMode, &t.TripType,
			&t.Confidence, &t.CarbonEmissionKg, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, t)
	}

	return trips, nil
}

// InsertTx inserts a trip inside an existing transaction.
func (r *TripRepository) InsertTx(tx *sql.Tx, t *models.Trip) error {
	result, err := tx.Exec(`INSERT INTO trips (
			subject_id, date, start_time, end_time, duration_seconds,
			start_lat, start_lng, end_lat, end_lng, distance_km,
			avg_speed_kmh, max_speed_kmh, transport_mode, trip_type,
			confidence, carbon_emission_kg, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		t.SubjectID, t.Date, t.StartTime, t.EndTime, t.DurationSeconds,
		t.StartLat, t.StartLng, t.EndLat, t.EndLng, t.DistanceKm,
		t.AvgSpeedKmh, t.MaxSpeedKmh, t.TransportMode, t.TripType,
		t.Confidence, t.CarbonEmissionKg,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	id, err := result.LastInsertId()
	if err == nil {
		t.ID = id
	}
	return nil
}

// DeleteByDateTx removes all trips for one subject and date inside an
// existing transaction. Used by forced re-analysis.
func (r *TripRepository) DeleteByDateTx(tx *sql.Tx, subjectID, date string) error {
	if _, err := tx.Exec("DELETE FROM trips WHERE subject_id = ? AND date = ?", subjectID, date); err != nil {
		return fmt.Errorf("failed to delete trips: %w", err)
	}
	return nil
}

// CountByDate returns the number of stored trips for one subject and date.
func (r *TripRepository) CountByDate(subjectID, date string) (int64, error) {
	var count int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM trips WHERE subject_id = ? AND date = ?", subjectID, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count trips: %w", err)
	}
	return count, nil
}
