package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/models"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/repository"
)

// SensorRegistryService owns sensor identity: registration, device id
// resolution, and ownership checks on sensor access.
type SensorRegistryService struct {
	farmRepo       repository.IFarmRepository
	greenhouseRepo repository.IGreenhouseRepository
	sensorRepo     repository.ISensorRepository
	readingRepo    repository.ISensorReadingRepository
	activities     *ActivityService
}

func NewSensorRegistryService(
	farmRepo repository.IFarmRepository,
	greenhouseRepo repository.IGreenhouseRepository,
	sensorRepo repository.ISensorRepository,
	readingRepo repository.ISensorReadingRepository,
	activities *ActivityService,
) *SensorRegistryService {
	return &SensorRegistryService{
		farmRepo:       farmRepo,
		greenhouseRepo: greenhouseRepo,
		sensorRepo:     sensorRepo,
		readingRepo:    readingRepo,
		activities:     activities,
	}
}

// Register creates a sensor under a greenhouse the principal owns. Checks
// run in a fixed order: field presence, greenhouse existence, ownership,
// then device id uniqueness.
func (s *SensorRegistryService) Register(ctx context.Context, principalID string, req models.RegisterSensorRequest) (*models.Sensor, error) {
	if req.GreenhouseID == "" || req.DeviceID == "" || req.Name == "" || req.Type == "" {
		return nil, models.NewValidationError("MISSING_FIELDS", "greenhouseId, deviceId, name and type are required")
	}

	greenhouseID, err := uuid.Parse(req.GreenhouseID)
	if err != nil {
		return nil, models.NewNotFoundError("NOT_FOUND", "Greenhouse not found")
	}

	greenhouse, err := s.greenhouseRepo.GetByID(ctx, greenhouseID)
	if err != nil {
		return nil, err
	}
	if greenhouse == nil {
		return nil, models.NewNotFoundError("NOT_FOUND", "Greenhouse not found")
	}

	farm, err := s.farmRepo.GetByID(ctx, greenhouse.FarmID)
	if err != nil {
		return nil, err
	}
	if farm == nil || farm.OwnerID != principalID {
		return nil, models.NewAuthorizationError("FORBIDDEN", "Not authorized to access this greenhouse")
	}

	// Device ids are globally unique, not per greenhouse.
	existing, err := s.sensorRepo.GetByDeviceID(ctx, req.DeviceID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("SENSOR_EXISTS", "A sensor with this device ID already exists")
	}

	sensor := &models.Sensor{
		GreenhouseID: greenhouseID,
		DeviceID:     req.DeviceID,
		Name:         req.Name,
		Type:         req.Type,
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
		Status:       models.SensorActive,
	}

	if err := s.sensorRepo.Create(ctx, sensor); err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Sensor %s (%s) added to %s", sensor.Name, sensor.Type, greenhouse.Name)
	activity := &models.Activity{
		FarmID:       farm.ID,
		GreenhouseID: &greenhouseID,
		Type:         models.ActivityMaintenance,
		Title:        "New sensor registered",
		Description:  &description,
		Status:       models.StatusInfo,
	}
	if _, err := s.activities.Append(ctx, activity); err != nil {
		// The sensor exists either way; the feed entry is not worth failing
		// the registration over.
		slog.Warn("Failed to record sensor registration activity",
			"sensor_id", sensor.ID,
			"error", err)
	}

	slog.Info("Sensor registered",
		"sensor_id", sensor.ID,
		"device_id", sensor.DeviceID,
		"greenhouse_id", greenhouseID)

	return sensor, nil
}

// ResolveByDevice maps a device id to its sensor. Used on the ingest path,
// where the device is the principal and there is no ownership check. An
// empty device id is just an unregistered one; the route only ever answers
// SENSOR_NOT_FOUND for bad identities.
func (s *SensorRegistryService) ResolveByDevice(ctx context.Context, deviceID string) (*models.Sensor, error) {
	if deviceID == "" {
		return nil, models.NewNotFoundError("SENSOR_NOT_FOUND", "Sensor not registered")
	}

	sensor, err := s.sensorRepo.GetByDeviceID(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if sensor == nil {
		return nil, models.NewNotFoundError("SENSOR_NOT_FOUND", "Sensor not registered")
	}
	return sensor, nil
}

// AuthorizeOwnership walks sensor -> greenhouse -> farm and verifies the
// principal owns the farm.
func (s *SensorRegistryService) AuthorizeOwnership(ctx context.Context, principalID string, sensorID uuid.UUID) (*models.Sensor, error) {
	sensor, err := s.sensorRepo.GetByID(ctx, sensorID)
	if err != nil {
		return nil, err
	}
	if sensor == nil {
		return nil, models.NewNotFoundError("SENSOR_NOT_FOUND", "Sensor not found")
	}

	greenhouse, err := s.greenhouseRepo.GetByID(ctx, sensor.GreenhouseID)
	if err != nil {
		return nil, err
	}
	if greenhouse == nil {
		return nil, models.NewNotFoundError("NOT_FOUND", "Greenhouse not found")
	}

	farm, err := s.farmRepo.GetByID(ctx, greenhouse.FarmID)
	if err != nil {
		return nil, err
	}
	if farm == nil || farm.OwnerID != principalID {
		return nil, models.NewAuthorizationError("FORBIDDEN", "Not authorized to access this sensor")
	}

	return sensor, nil
}

// GetSensorData returns up to limit readings from the last hours hours,
// newest first, for a sensor the principal owns.
func (s *SensorRegistryService) GetSensorData(ctx context.Context, principalID string, sensorID uuid.UUID, hours, limit int) ([]models.SensorReading, error) {
	if _, err := s.AuthorizeOwnership(ctx, principalID, sensorID); err != nil {
		return nil, err
	}

	since := time.Now().Add(-time.Duration(hours) * time.Hour)
	readings, err := s.readingRepo.GetBySensorSince(ctx, sensorID, since, limit)
	if err != nil {
		return nil, err
	}
	if readings == nil {
		readings = []models.SensorReading{}
	}
	return readings, nil
}
