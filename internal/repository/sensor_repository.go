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

type ISensorRepository interface {
	Create(ctx context.Context, sensor *models.Sensor) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Sensor, error)
	GetByDeviceID(ctx context.Context, deviceID string) (*models.Sensor, error)
	GetByGreenhouseID(ctx context.Context, greenhouseID uuid.UUID) ([]models.Sensor, error)
	GetActiveByTypeForGreenhouses(ctx context.Context, greenhouseIDs []uuid.UUID, sensorType models.SensorType) ([]models.Sensor, error)
	UpdateLastReading(ctx context.Context, sensorID uuid.UUID, value float64, timestamp time.Time) error
}

type SensorRepository struct {
	db *sqlx.DB
}

func NewSensorRepository(db *sqlx.DB) ISensorRepository {
	return &SensorRepository{db: db}
}

const sensorColumns = `id, greenhouse_id, device_id, name, type, manufacturer, model, status,
		last_reading_value, last_reading_timestamp, created_at, updated_at`

func (r *SensorRepository) Create(ctx context.Context, sensor *models.Sensor) error {
	if sensor.ID == uuid.Nil {
		sensor.ID = uuid.New()
	}
	sensor.CreatedAt = time.Now()
	sensor.UpdatedAt = sensor.CreatedAt

	query := `
		INSERT INTO sensors (
			id, greenhouse_id, device_id, name, type, manufacturer, model, status,
			created_at, updated_at
		) VALUES (
			:id, :greenhouse_id, :device_id, :name, :type, :manufacturer, :model, :status,
			:created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, sensor)
	if err != nil {
		slog.Error("Failed to create sensor",
			"id", sensor.ID,
			"device_id", sensor.DeviceID,
			"error", err)
		return fmt.Errorf("failed to create sensor: %w", err)
	}
	return nil
}

func (r *SensorRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Sensor, error) {
	var sensor models.Sensor
	query := `SELECT ` + sensorColumns + ` FROM sensors WHERE id = $1`

	err := r.db.GetContext(ctx, &sensor, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Error("Failed to get sensor", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get sensor: %w", err)
	}
	sensor.HydrateLastReading()
	return &sensor, nil
}

func (r *SensorRepository) GetByDeviceID(ctx context.Context, deviceID string) (*models.Sensor, error) {
	var sensor models.Sensor
	query := `SELECT ` + sensorColumns + ` FROM sensors WHERE device_id = $1`

	err := r.db.GetContext(ctx, &sensor, query, deviceID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Error("Failed to get sensor by device id", "device_id", deviceID, "error", err)
		return nil, fmt.Errorf("failed to get sensor by device id: %w", err)
	}
	sensor.HydrateLastReading()
	return &sensor, nil
}

func (r *SensorRepository) GetByGreenhouseID(ctx context.Context, greenhouseID uuid.UUID) ([]models.Sensor, error) {
	var sensors []models.Sensor
	query := `SELECT ` + sensorColumns + ` FROM sensors WHERE greenhouse_id = $1 ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &sensors, query, greenhouseID)
	if err != nil {
		slog.Error("Failed to get sensors by greenhouse", "greenhouse_id", greenhouseID, "error", err)
		return nil, fmt.Errorf("failed to get sensors by greenhouse: %w", err)
	}
	for i := range sensors {
		sensors[i].HydrateLastReading()
	}
	return sensors, nil
}

func (r *SensorRepository) GetActiveByTypeForGreenhouses(ctx context.Context, greenhouseIDs []uuid.UUID, sensorType models.SensorType) ([]models.Sensor, error) {
	if len(greenhouseIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(
		`SELECT `+sensorColumns+` FROM sensors WHERE greenhouse_id IN (?) AND type = ? AND status = ?`,
		greenhouseIDs, sensorType, models.SensorActive)
	if err != nil {
		return nil, fmt.Errorf("failed to build sensor query: %w", err)
	}

	var sensors []models.Sensor
	err = r.db.SelectContext(ctx, &sensors, r.db.Rebind(query), args...)
	if err != nil {
		slog.Error("Failed to get sensors by type",
			"type", sensorType,
			"greenhouse_count", len(greenhouseIDs),
			"error", err)
		return nil, fmt.Errorf("failed to get sensors by type: %w", err)
	}
	for i := range sensors {
		sensors[i].HydrateLastReading()
	}
	return sensors, nil
}

// UpdateLastReading refreshes the denormalized cache columns. Callers treat
// a failure here as best-effort; the canonical value lives in sensor_readings.
func (r *SensorRepository) UpdateLastReading(ctx context.Context, sensorID uuid.UUID, value float64, timestamp time.Time) error {
	query := `
		UPDATE sensors
		SET last_reading_value = $1, last_reading_timestamp = $2, updated_at = NOW()
		WHERE id = $3`

	_, err := r.db.ExecContext(ctx, query, value, timestamp, sensorID)
	if err != nil {
		slog.Error("Failed to update sensor last reading", "sensor_id", sensorID, "error", err)
		return fmt.Errorf("failed to update sensor last reading: %w", err)
	}
	return nil
}
