package models

import (
	"time"

	"github.com/google/uuid"
)

// PlantHealthSnapshot is produced by the external analysis service and only
// read here.
type PlantHealthSnapshot struct {
	ID                  uuid.UUID `json:"id" db:"id"`
	GreenhouseID        uuid.UUID `json:"greenhouse_id" db:"greenhouse_id"`
	TotalPlants         int       `json:"total_plants" db:"total_plants"`
	HealthyPlants       int       `json:"healthy_plants" db:"healthy_plants"`
	DiseasedPlants      int       `json:"diseased_plants" db:"diseased_plants"`
	DiseaseType         *string   `json:"disease_type,omitempty" db:"disease_type"`
	DetectionConfidence *float64  `json:"detection_confidence,omitempty" db:"detection_confidence"`
	Timestamp           time.Time `json:"timestamp" db:"timestamp"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
}

// DailyHealthAggregate is one calendar-date bucket of the 7-day trend,
// averaged across all of a farm's greenhouses.
type DailyHealthAggregate struct {
	Date        string  `db:"date"`
	AvgHealthy  float64 `db:"avg_healthy"`
	AvgDiseased float64 `db:"avg_diseased"`
}
