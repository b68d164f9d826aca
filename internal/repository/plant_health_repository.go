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

type IPlantHealthRepository interface {
	GetLatestForGreenhouses(ctx context.Context, greenhouseIDs []uuid.UUID) (*models.PlantHealthSnapshot, error)
	GetDailyAveragesSince(ctx context.Context, greenhouseIDs []uuid.UUID, since time.Time) ([]models.DailyHealthAggregate, error)
	GetRecentByGreenhouse(ctx context.Context, greenhouseID uuid.UUID, limit int) ([]models.PlantHealthSnapshot, error)
}

type PlantHealthRepository struct {
	db *sqlx.DB
}

func NewPlantHealthRepository(db *sqlx.DB) IPlantHealthRepository {
	return &PlantHealthRepository{db: db}
}

const snapshotColumns = `id, greenhouse_id, total_plants, healthy_plants, diseased_plants,
		disease_type, detection_confidence, timestamp, created_at`

// GetLatestForGreenhouses returns the single most recent snapshot across
// all the given greenhouses, or nil when none exists. Note this is *a*
// most-recent snapshot, not a per-greenhouse aggregate: when greenhouses
// do not share snapshot timestamps, whichever one was reported last wins.
func (r *PlantHealthRepository) GetLatestForGreenhouses(ctx context.Context, greenhouseIDs []uuid.UUID) (*models.PlantHealthSnapshot, error) {
	if len(greenhouseIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(
		`SELECT `+snapshotColumns+` FROM plant_health_snapshots
		WHERE greenhouse_id IN (?) ORDER BY timestamp DESC LIMIT 1`,
		greenhouseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot query: %w", err)
	}

	var snapshot models.PlantHealthSnapshot
	err = r.db.GetContext(ctx, &snapshot, r.db.Rebind(query), args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Error("Failed to get latest plant health snapshot",
			"greenhouse_count", len(greenhouseIDs),
			"error", err)
		return nil, fmt.Errorf("failed to get latest plant health snapshot: %w", err)
	}
	return &snapshot, nil
}

// GetDailyAveragesSince groups snapshots by calendar date, averaging the
// healthy and diseased counts per date, oldest first.
func (r *PlantHealthRepository) GetDailyAveragesSince(ctx context.Context, greenhouseIDs []uuid.UUID, since time.Time) ([]models.DailyHealthAggregate, error) {
	if len(greenhouseIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(
		`SELECT to_char(timestamp, 'YYYY-MM-DD') AS date,
			AVG(healthy_plants) AS avg_healthy,
			AVG(diseased_plants) AS avg_diseased
		FROM plant_health_snapshots
		WHERE greenhouse_id IN (?) AND timestamp >= ?
		GROUP BY 1
		ORDER BY 1 ASC`,
		greenhouseIDs, since)
	if err != nil {
		return nil, fmt.Errorf("failed to build trend query: %w", err)
	}

	var aggregates []models.DailyHealthAggregate
	err = r.db.SelectContext(ctx, &aggregates, r.db.Rebind(query), args...)
	if err != nil {
		slog.Error("Failed to get daily health averages",
			"greenhouse_count", len(greenhouseIDs),
			"error", err)
		return nil, fmt.Errorf("failed to get daily health averages: %w", err)
	}
	return aggregates, nil
}

func (r *PlantHealthRepository) GetRecentByGreenhouse(ctx context.Context, greenhouseID uuid.UUID, limit int) ([]models.PlantHealthSnapshot, error) {
	var snapshots []models.PlantHealthSnapshot
	query := `SELECT ` + snapshotColumns + ` FROM plant_health_snapshots
		WHERE greenhouse_id = $1 ORDER BY timestamp DESC LIMIT $2`

	err := r.db.SelectContext(ctx, &snapshots, query, greenhouseID, limit)
	if err != nil {
		slog.Error("Failed to get plant health history", "greenhouse_id", greenhouseID, "error", err)
		return nil, fmt.Errorf("failed to get plant health history: %w", err)
	}
	return snapshots, nil
}
