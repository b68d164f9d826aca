package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/models"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/repository"
)

// IngestionService is the write path for device measurements. The appended
// reading is the only durable effect; the last-reading cache refresh and the
// alert evaluation are both best-effort follow-ups.
type IngestionService struct {
	registry    *SensorRegistryService
	sensorRepo  repository.ISensorRepository
	readingRepo repository.ISensorReadingRepository
	evaluator   *AlertEvaluator
}

func NewIngestionService(
	registry *SensorRegistryService,
	sensorRepo repository.ISensorRepository,
	readingRepo repository.ISensorReadingRepository,
	evaluator *AlertEvaluator,
) *IngestionService {
	return &IngestionService{
		registry:    registry,
		sensorRepo:  sensorRepo,
		readingRepo: readingRepo,
		evaluator:   evaluator,
	}
}

// Ingest records one measurement from a device. The reading row is written
// first; once it exists the ingest has succeeded and later failures only log.
func (s *IngestionService) Ingest(ctx context.Context, req models.IngestRequest) error {
	sensor, err := s.registry.ResolveByDevice(ctx, req.DeviceID)
	if err != nil {
		return err
	}

	timestamp := time.Now()
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	reading := &models.SensorReading{
		SensorID:     sensor.ID,
		GreenhouseID: sensor.GreenhouseID,
		Value:        req.Value,
		Unit:         req.Unit,
		Timestamp:    timestamp,
	}
	if err := s.readingRepo.Create(ctx, reading); err != nil {
		return err
	}

	if err := s.sensorRepo.UpdateLastReading(ctx, sensor.ID, req.Value, timestamp); err != nil {
		slog.Warn("Failed to refresh last-reading cache",
			"sensor_id", sensor.ID,
			"error", err)
	}

	if err := s.evaluator.ProcessReading(ctx, sensor, req.Value); err != nil {
		slog.Error("Alert evaluation failed",
			"sensor_id", sensor.ID,
			"value", req.Value,
			"error", err)
	}

	return nil
}
