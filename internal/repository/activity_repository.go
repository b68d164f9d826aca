package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/models"
)

type IActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) error
	GetRecentByFarm(ctx context.Context, farmID uuid.UUID, limit int) ([]models.ActivityWithGreenhouse, error)
}

type ActivityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) IActivityRepository {
	return &ActivityRepository{db: db}
}

// Create appends one event. Activities are immutable once created; there is
// no update or delete path.
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	if activity.Status == "" {
		activity.Status = models.StatusInfo
	}
	activity.CreatedAt = time.Now()

	query := `
		INSERT INTO activities (
			id, farm_id, greenhouse_id, type, title, description, plant, status, metadata, created_at
		) VALUES (
			:id, :farm_id, :greenhouse_id, :type, :title, :description, :plant, :status, :metadata, :created_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, activity)
	if err != nil {
		slog.Error("Failed to create activity",
			"farm_id", activity.FarmID,
			"type", activity.Type,
			"error", err)
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// GetRecentByFarm returns the newest activities first, with the greenhouse
// display name joined in. Creation-time ties keep insertion order.
func (r *ActivityRepository) GetRecentByFarm(ctx context.Context, farmID uuid.UUID, limit int) ([]models.ActivityWithGreenhouse, error) {
	var activities []models.ActivityWithGreenhouse
	query := `
		SELECT
			a.id, a.farm_id, a.greenhouse_id, a.type, a.title, a.description,
			a.plant, a.status, a.metadata, a.created_at,
			g.name AS greenhouse_name
		FROM activities a
		LEFT JOIN greenhouses g ON a.greenhouse_id = g.id
		WHERE a.farm_id = $1
		ORDER BY a.created_at DESC, a.seq ASC
		LIMIT $2`

	err := r.db.SelectContext(ctx, &activities, query, farmID, limit)
	if err != nil {
		slog.Error("Failed to get recent activities", "farm_id", farmID, "error", err)
		return nil, fmt.Errorf("failed to get recent activities: %w", err)
	}
	return activities, nil
}
