package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/models"
)

type ISensorReadingRepository interface {
	Create(ctx context.Context, reading *models.SensorReading) error
	GetLatestBySensorID(ctx context.Context, sensorID uuid.UUID) (*models.SensorReading, error)
	GetBySensorSince(ctx context.Context, sensorID uuid.UUID, since time.Time, limit int) ([]models.SensorReading, error)
}

type SensorReadingRepository struct {
	db *sqlx.DB
}

func NewSensorReadingRepository(db *sqlx.DB) ISensorReadingRepository {
	return &SensorReadingRepository{db: db}
}

const readingColumns = `id, sensor_id, greenhouse_id, value, unit, quality, timestamp, created_at`

// Create appends one immutable reading. This is the durability source of
// truth for an ingest; there is no update path.
func (r *SensorReadingRepository) Create(ctx context.Context, reading *models.SensorReading) error {
	if reading.ID == uuid.Nil {
		reading.ID = uuid.New()
	}
	if reading.Quality == "" {
		reading.Quality = models.QualityGood
	}
	reading.CreatedAt = time.Now()

	query := `
		INSERT INTO sensor_readings (
			id, sensor_id, greenhouse_id, value, unit, quality, timestamp, created_at
		) VALUES (
			:id, :sensor_id, :greenhouse_id, :value, :unit, :quality, :timestamp, :created_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, reading)
	if err != nil {
		slog.Error("Failed to create sensor reading",
			"sensor_id", reading.SensorID,
			"error", err)
		return fmt.Errorf("failed to create sensor reading: %w", err)
	}
	return nil
}

// GetLatestBySensorID returns the true most recent reading by timestamp, or
// nil when the sensor has none yet.
func (r *SensorReadingRepository) GetLatestBySensorID(ctx context.Context, sensorID uuid.UUID) (*models.SensorReading, error) {
	var reading models.SensorReading
	query := `SELECT ` + readingColumns + ` FROM sensor_readings
		WHERE sensor_id = $1 ORDER BY timestamp DESC LIMIT 1`

	err := r.db.GetContext(ctx, &reading, query, sensorID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Error("Failed to get latest reading", "sensor_id", sensorID, "error", err)
		return nil, fmt.Errorf("failed to get latest reading: %w", err)
	}
	return &reading, nil
}

func (r *SensorReadingRepository) GetBySensorSince(ctx context.Context, sensorID uuid.UUID, since time.Time, limit int) ([]models.SensorReading, error) {
	var readings []models.SensorReading
	query := `SELECT ` + readingColumns + ` FROM sensor_readings
		WHERE sensor_id = $1 AND timestamp >= $2
		ORDER BY timestamp DESC LIMIT $3`

	err := r.db.SelectContext(ctx, &readings, query, sensorID, since, limit)
	if err != nil {
		slog.Error("Failed to get readings", "sensor_id", sensorID, "error", err)
		return nil, fmt.Errorf("failed to get readings: %w", err)
	}
	return readings, nil
}
