package repository

import (
	"database/sql"
	"fmt"

	"github.com/greenroute/carbon-backend-go/internal/models"
)

// PointRepository handles database operations for GPS points
type PointRepository struct {
	db *sql.DB
}

// NewPointRepository creates a new point repository
func NewPointRepository(db *sql.DB) *PointRepository {
	return &PointRepository{db: db}
}

// GetPointsInRange retrieves a subject's points inside [startTime, endTime)
// ordered by recording time.
func (r *PointRepository) GetPointsInRange(subjectID string, startTime, endTime int64) ([]models.GpsPoint, error) {
	query := `SELECT id, subject_id, latitude, longitude, recorded_at,
		speed, accuracy, altitude, bearing
		FROM gps_points
		WHERE subject_id = ? AND recorded_at >= ? AND recorded_at < ?
		ORDER BY recorded_at`

	rows, err := r.db.Query(query, subjectID, startTime, endTime)
	if err != nil {
		return nil, fmt.Errorf("failed to query points: %w", err)
	}
	defer rows.Close()

	var points []models.GpsPoint
	for rows.Next() {
		var p models.GpsPoint
		if err := rows.Scan(
			&p.ID, &p.SubjectID, &p.Latitude, &p.Longitude, &p.RecordedAt,
			&p.Speed, &p.Accuracy, &p.Altitude, &p.Bearing,
		); err != nil {
			return nil, fmt.Errorf("failed to scan point: %w", err)
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return points, nil
}

// SaveBatch inserts a batch of points inside one transaction. Used by the
// ingestion glue and by tests.
func (r *PointRepository) SaveBatch(points []models.GpsPoint) error {
	if len(points) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO gps_points
		(subject_id, latitude, longitude, recorded_at, speed, accuracy, altitude, bearing)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, p := range points {
		if _, err := stmt.Exec(
			p.SubjectID, p.Latitude, p.Longitude, p.RecordedAt,
			p.Speed, p.Accuracy, p.Altitude, p.Bearing,
		); err != nil {
			return fmt.Errorf("failed to insert point: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
