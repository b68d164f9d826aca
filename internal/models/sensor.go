package models

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// SENSORS & READINGS (TIME-SERIES)
// ============================================================================

// LastReading is the denormalized cache of a sensor's most recent value.
// It is written best-effort on ingest and must never be trusted for
// correctness-sensitive aggregates; those always query sensor_readings.
type LastReading struct {
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

type Sensor struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	GreenhouseID uuid.UUID    `json:"greenhouse_id" db:"greenhouse_id"`
	DeviceID     string       `json:"device_id" db:"device_id"`
	Name         string       `json:"name" db:"name"`
	Type         SensorType   `json:"type" db:"type"`
	Manufacturer *string      `json:"manufacturer,omitempty" db:"manufacturer"`
	Model        *string      `json:"model,omitempty" db:"model"`
	Status       SensorStatus `json:"status" db:"status"`
	LastReading  *LastReading `json:"last_reading,omitempty" db:"-"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`

	LastReadingValue     *float64   `json:"-" db:"last_reading_value"`
	LastReadingTimestamp *time.Time `json:"-" db:"last_reading_timestamp"`
}

// HydrateLastReading folds the flat cache columns into the nested form the
// API exposes.
func (s *Sensor) HydrateLastReading() {
	if s.LastReadingValue != nil && s.LastReadingTimestamp != nil {
		s.LastReading = &LastReading{
			Value:     *s.LastReadingValue,
			Timestamp: *s.LastReadingTimestamp,
		}
	}
}

// SensorReading is one immutable measurement. Rows are append-only and are
// never updated after creation.
type SensorReading struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	SensorID     uuid.UUID      `json:"sensor_id" db:"sensor_id"`
	GreenhouseID uuid.UUID      `json:"greenhouse_id" db:"greenhouse_id"`
	Value        float64        `json:"value" db:"value"`
	Unit         string         `json:"unit" db:"unit"`
	Quality      ReadingQuality `json:"quality" db:"quality"`
	Timestamp    time.Time      `json:"timestamp" db:"timestamp"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
}
