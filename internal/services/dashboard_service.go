package services

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/models"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/repository"
)

const (
	trendWindowDays     = 7
	recentActivityCount = 10
	healthHistoryCount  = 30
)

// DashboardService assembles the farmer-facing read models: the farm
// dashboard and the per-greenhouse detail view.
type DashboardService struct {
	farmRepo        repository.IFarmRepository
	greenhouseRepo  repository.IGreenhouseRepository
	sensorRepo      repository.ISensorRepository
	readingRepo     repository.ISensorReadingRepository
	plantHealthRepo repository.IPlantHealthRepository
	activities      *ActivityService
	locale          Locale

	// now is swapped in tests to pin relative-time rendering.
	now func() time.Time
}

func NewDashboardService(
	farmRepo repository.IFarmRepository,
	greenhouseRepo repository.IGreenhouseRepository,
	sensorRepo repository.ISensorRepository,
	readingRepo repository.ISensorReadingRepository,
	plantHealthRepo repository.IPlantHealthRepository,
	activities *ActivityService,
	locale Locale,
) *DashboardService {
	return &DashboardService{
		farmRepo:        farmRepo,
		greenhouseRepo:  greenhouseRepo,
		sensorRepo:      sensorRepo,
		readingRepo:     readingRepo,
		plantHealthRepo: plantHealthRepo,
		activities:      activities,
		locale:          locale,
		now:             time.Now,
	}
}

// GetDashboard builds the full dashboard for the principal's farm. The
// principal is resolved to their first farm found; a farmer with no farm is
// a 404, not an empty dashboard.
func (s *DashboardService) GetDashboard(ctx context.Context, principalID string) (*models.DashboardView, error) {
	farm, err := s.farmRepo.GetFirstByOwnerID(ctx, principalID)
	if err != nil {
		return nil, err
	}
	if farm == nil {
		return nil, models.NewNotFoundError("FARM_NOT_FOUND", "No farm found for this user")
	}

	greenhouses, err := s.greenhouseRepo.GetByFarmID(ctx, farm.ID)
	if err != nil {
		return nil, err
	}
	greenhouseIDs := make([]uuid.UUID, 0, len(greenhouses))
	for _, gh := range greenhouses {
		greenhouseIDs = append(greenhouseIDs, gh.ID)
	}

	now := s.now()

	stats, err := s.buildStats(ctx, greenhouseIDs)
	if err != nil {
		return nil, err
	}

	chartData, err := s.buildTrend(ctx, greenhouseIDs, now)
	if err != nil {
		return nil, err
	}

	recentActivities, err := s.activities.RecentViews(ctx, farm.ID, recentActivityCount, now)
	if err != nil {
		return nil, err
	}
	if recentActivities == nil {
		recentActivities = []models.ActivityView{}
	}

	return &models.DashboardView{
		Stats:            *stats,
		ChartData:        chartData,
		RecentActivities: recentActivities,
	}, nil
}

// buildStats takes plant counts from the single most recent health snapshot
// across the farm, zeros when none exists, and the live water level.
func (s *DashboardService) buildStats(ctx context.Context, greenhouseIDs []uuid.UUID) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	snapshot, err := s.plantHealthRepo.GetLatestForGreenhouses(ctx, greenhouseIDs)
	if err != nil {
		return nil, err
	}
	if snapshot != nil {
		stats.TotalPlants = snapshot.TotalPlants
		stats.HealthyPlants = snapshot.HealthyPlants
		stats.Diseased = snapshot.DiseasedPlants
	}

	waterLevel, err := s.averageWaterLevel(ctx, greenhouseIDs)
	if err != nil {
		return nil, err
	}
	stats.WaterLevel = waterLevel

	return stats, nil
}

// averageWaterLevel averages the latest soil moisture reading of every
// active soil_moisture sensor on the farm. Latest readings are fetched
// concurrently; a sensor whose fetch fails or that has no readings yet
// contributes 0 rather than failing the dashboard.
func (s *DashboardService) averageWaterLevel(ctx context.Context, greenhouseIDs []uuid.UUID) (int, error) {
	sensors, err := s.sensorRepo.GetActiveByTypeForGreenhouses(ctx, greenhouseIDs, models.SensorSoilMoisture)
	if err != nil {
		return 0, err
	}
	if len(sensors) == 0 {
		return 0, nil
	}

	values := make([]float64, len(sensors))
	var wg sync.WaitGroup
	for i, sensor := range sensors {
		wg.Add(1)
		go func(i int, sensorID uuid.UUID) {
			defer wg.Done()
			reading, err := s.readingRepo.GetLatestBySensorID(ctx, sensorID)
			if err != nil || reading == nil {
				return
			}
			values[i] = reading.Value
		}(i, sensor.ID)
	}
	wg.Wait()

	var sum float64
	for _, v := range values {
		sum += v
	}
	return int(math.Round(sum / float64(len(sensors)))), nil
}

// buildTrend returns the last 7 calendar days of plant health, one point
// per date that has snapshots, labeled with the day-of-week abbreviation.
func (s *DashboardService) buildTrend(ctx context.Context, greenhouseIDs []uuid.UUID, now time.Time) ([]models.TrendPoint, error) {
	since := now.AddDate(0, 0, -trendWindowDays)
	aggregates, err := s.plantHealthRepo.GetDailyAveragesSince(ctx, greenhouseIDs, since)
	if err != nil {
		return nil, err
	}

	points := make([]models.TrendPoint, 0, len(aggregates))
	for _, agg := range aggregates {
		date, err := time.Parse("2006-01-02", agg.Date)
		if err != nil {
			continue
		}
		points = append(points, models.TrendPoint{
			Name:     s.locale.DayAbbrev(date),
			Healthy:  int(math.Round(agg.AvgHealthy)),
			Diseased: int(math.Round(agg.AvgDiseased)),
		})
	}
	return points, nil
}

// GetGreenhouseDetail returns one greenhouse with its sensors, each sensor's
// true latest reading, and recent health history. Access requires owning the
// greenhouse's farm.
func (s *DashboardService) GetGreenhouseDetail(ctx context.Context, principalID string, greenhouseID uuid.UUID) (*models.GreenhouseView, error) {
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

	sensors, err := s.sensorRepo.GetByGreenhouseID(ctx, greenhouseID)
	if err != nil {
		return nil, err
	}

	sensorsWithData := make([]models.SensorWithLatest, len(sensors))
	var wg sync.WaitGroup
	for i, sensor := range sensors {
		sensorsWithData[i].Sensor = sensor
		wg.Add(1)
		go func(i int, sensorID uuid.UUID) {
			defer wg.Done()
			reading, err := s.readingRepo.GetLatestBySensorID(ctx, sensorID)
			if err != nil {
				return
			}
			sensorsWithData[i].LatestData = reading
		}(i, sensor.ID)
	}
	wg.Wait()

	history, err := s.plantHealthRepo.GetRecentByGreenhouse(ctx, greenhouseID, healthHistoryCount)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []models.PlantHealthSnapshot{}
	}

	return &models.GreenhouseView{
		Greenhouse:    *greenhouse,
		Sensors:       sensorsWithData,
		HealthHistory: history,
	}, nil
}
