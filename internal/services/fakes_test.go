package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/event"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/models"
)

// ============================================================================
// IN-MEMORY REPOSITORY FAKES
// ============================================================================

var errStoreDown = errors.New("store unavailable")

type fakeFarmRepo struct {
	farms map[uuid.UUID]*models.Farm
	// firstByOwner short-circuits GetFirstByOwnerID.
	firstByOwner map[string]*models.Farm
}

func newFakeFarmRepo() *fakeFarmRepo {
	return &fakeFarmRepo{
		farms:        make(map[uuid.UUID]*models.Farm),
		firstByOwner: make(map[string]*models.Farm),
	}
}

func (f *fakeFarmRepo) add(farm *models.Farm) {
	f.farms[farm.ID] = farm
	if _, ok := f.firstByOwner[farm.OwnerID]; !ok {
		f.firstByOwner[farm.OwnerID] = farm
	}
}

func (f *fakeFarmRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Farm, error) {
	return f.farms[id], nil
}

func (f *fakeFarmRepo) GetFirstByOwnerID(_ context.Context, ownerID string) (*models.Farm, error) {
	return f.firstByOwner[ownerID], nil
}

type fakeGreenhouseRepo struct {
	greenhouses map[uuid.UUID]*models.Greenhouse
}

func newFakeGreenhouseRepo() *fakeGreenhouseRepo {
	return &fakeGreenhouseRepo{greenhouses: make(map[uuid.UUID]*models.Greenhouse)}
}

func (f *fakeGreenhouseRepo) add(gh *models.Greenhouse) {
	f.greenhouses[gh.ID] = gh
}

func (f *fakeGreenhouseRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Greenhouse, error) {
	return f.greenhouses[id], nil
}

func (f *fakeGreenhouseRepo) GetByFarmID(_ context.Context, farmID uuid.UUID) ([]models.Greenhouse, error) {
	var out []models.Greenhouse
	for _, gh := range f.greenhouses {
		if gh.FarmID == farmID {
			out = append(out, *gh)
		}
	}
	return out, nil
}

type fakeSensorRepo struct {
	sensors        map[uuid.UUID]*models.Sensor
	byDevice       map[string]*models.Sensor
	created        []*models.Sensor
	lastReadingErr error
	lastUpdated    map[uuid.UUID]float64
}

func newFakeSensorRepo() *fakeSensorRepo {
	return &fakeSensorRepo{
		sensors:     make(map[uuid.UUID]*models.Sensor),
		byDevice:    make(map[string]*models.Sensor),
		lastUpdated: make(map[uuid.UUID]float64),
	}
}

func (f *fakeSensorRepo) add(sensor *models.Sensor) {
	f.sensors[sensor.ID] = sensor
	f.byDevice[sensor.DeviceID] = sensor
}

func (f *fakeSensorRepo) Create(_ context.Context, sensor *models.Sensor) error {
	if sensor.ID == uuid.Nil {
		sensor.ID = uuid.New()
	}
	f.add(sensor)
	f.created = append(f.created, sensor)
	return nil
}

func (f *fakeSensorRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Sensor, error) {
	return f.sensors[id], nil
}

func (f *fakeSensorRepo) GetByDeviceID(_ context.Context, deviceID string) (*models.Sensor, error) {
	return f.byDevice[deviceID], nil
}

func (f *fakeSensorRepo) GetByGreenhouseID(_ context.Context, greenhouseID uuid.UUID) ([]models.Sensor, error) {
	var out []models.Sensor
	for _, s := range f.sensors {
		if s.GreenhouseID == greenhouseID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSensorRepo) GetActiveByTypeForGreenhouses(_ context.Context, greenhouseIDs []uuid.UUID, sensorType models.SensorType) ([]models.Sensor, error) {
	wanted := make(map[uuid.UUID]bool, len(greenhouseIDs))
	for _, id := range greenhouseIDs {
		wanted[id] = true
	}
	var out []models.Sensor
	for _, s := range f.sensors {
		if wanted[s.GreenhouseID] && s.Type == sensorType && s.Status == models.SensorActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSensorRepo) UpdateLastReading(_ context.Context, sensorID uuid.UUID, value float64, _ time.Time) error {
	if f.lastReadingErr != nil {
		return f.lastReadingErr
	}
	f.lastUpdated[sensorID] = value
	return nil
}

type fakeReadingRepo struct {
	created   []*models.SensorReading
	latest    map[uuid.UUID]*models.SensorReading
	latestErr map[uuid.UUID]error
	bySensor  map[uuid.UUID][]models.SensorReading
	createErr error
}

func newFakeReadingRepo() *fakeReadingRepo {
	return &fakeReadingRepo{
		latest:    make(map[uuid.UUID]*models.SensorReading),
		latestErr: make(map[uuid.UUID]error),
		bySensor:  make(map[uuid.UUID][]models.SensorReading),
	}
}

func (f *fakeReadingRepo) Create(_ context.Context, reading *models.SensorReading) error {
	if f.createErr != nil {
		return f.createErr
	}
	if reading.ID == uuid.Nil {
		reading.ID = uuid.New()
	}
	f.created = append(f.created, reading)
	return nil
}

func (f *fakeReadingRepo) GetLatestBySensorID(_ context.Context, sensorID uuid.UUID) (*models.SensorReading, error) {
	if err := f.latestErr[sensorID]; err != nil {
		return nil, err
	}
	return f.latest[sensorID], nil
}

func (f *fakeReadingRepo) GetBySensorSince(_ context.Context, sensorID uuid.UUID, since time.Time, limit int) ([]models.SensorReading, error) {
	readings := f.bySensor[sensorID]
	var out []models.SensorReading
	for _, r := range readings {
		if !r.Timestamp.Before(since) {
			out = append(out, r)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakePlantHealthRepo struct {
	latest     *models.PlantHealthSnapshot
	aggregates []models.DailyHealthAggregate
	recent     map[uuid.UUID][]models.PlantHealthSnapshot
}

func newFakePlantHealthRepo() *fakePlantHealthRepo {
	return &fakePlantHealthRepo{recent: make(map[uuid.UUID][]models.PlantHealthSnapshot)}
}

func (f *fakePlantHealthRepo) GetLatestForGreenhouses(_ context.Context, greenhouseIDs []uuid.UUID) (*models.PlantHealthSnapshot, error) {
	if len(greenhouseIDs) == 0 {
		return nil, nil
	}
	return f.latest, nil
}

func (f *fakePlantHealthRepo) GetDailyAveragesSince(_ context.Context, greenhouseIDs []uuid.UUID, _ time.Time) ([]models.DailyHealthAggregate, error) {
	if len(greenhouseIDs) == 0 {
		return nil, nil
	}
	return f.aggregates, nil
}

func (f *fakePlantHealthRepo) GetRecentByGreenhouse(_ context.Context, greenhouseID uuid.UUID, limit int) ([]models.PlantHealthSnapshot, error) {
	snapshots := f.recent[greenhouseID]
	if len(snapshots) > limit {
		snapshots = snapshots[:limit]
	}
	return snapshots, nil
}

type fakeActivityRepo struct {
	created   []*models.Activity
	recent    []models.ActivityWithGreenhouse
	createErr error
}

func (f *fakeActivityRepo) Create(_ context.Context, activity *models.Activity) error {
	if f.createErr != nil {
		return f.createErr
	}
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	if activity.Status == "" {
		activity.Status = models.StatusInfo
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}
	f.created = append(f.created, activity)
	return nil
}

func (f *fakeActivityRepo) GetRecentByFarm(_ context.Context, _ uuid.UUID, limit int) ([]models.ActivityWithGreenhouse, error) {
	recent := f.recent
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}

type fakeAlertPublisher struct {
	published []event.AlertNotificationEvent
	err       error
}

func (f *fakeAlertPublisher) PublishAlert(_ context.Context, evt event.AlertNotificationEvent) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, evt)
	return nil
}

// ============================================================================
// FIXTURE BUILDERS
// ============================================================================

func buildFarm(ownerID string) *models.Farm {
	return &models.Farm{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Name:     "Test Farm",
		IsActive: true,
	}
}

func buildGreenhouse(farmID uuid.UUID, name string) *models.Greenhouse {
	return &models.Greenhouse{
		ID:     uuid.New(),
		FarmID: farmID,
		Name:   name,
		Status: models.GreenhouseActive,
	}
}

func buildSensor(greenhouseID uuid.UUID, deviceID string, sensorType models.SensorType) *models.Sensor {
	return &models.Sensor{
		ID:           uuid.New(),
		GreenhouseID: greenhouseID,
		DeviceID:     deviceID,
		Name:         "Sensor " + deviceID,
		Type:         sensorType,
		Status:       models.SensorActive,
	}
}
