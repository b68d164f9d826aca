package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/models"
)

type IGreenhouseRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Greenhouse, error)
	GetByFarmID(ctx context.Context, farmID uuid.UUID) ([]models.Greenhouse, error)
}

type GreenhouseRepository struct {
	db *sqlx.DB
}

func NewGreenhouseRepository(db *sqlx.DB) IGreenhouseRepository {
	return &GreenhouseRepository{db: db}
}

const greenhouseColumns = `id, farm_id, name, crop_type, dimensions, status, optimal_conditions, created_at, updated_at`

func (r *GreenhouseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Greenhouse, error) {
	var greenhouse models.Greenhouse
	query := `SELECT ` + greenhouseColumns + ` FROM greenhouses WHERE id = $1`

	err := r.db.GetContext(ctx, &greenhouse, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Error("Failed to get greenhouse", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get greenhouse: %w", err)
	}
	return &greenhouse, nil
}

func (r *GreenhouseRepository) GetByFarmID(ctx context.Context, farmID uuid.UUID) ([]models.Greenhouse, error) {
	var greenhouses []models.Greenhouse
	query := `SELECT ` + greenhouseColumns + ` FROM greenhouses WHERE farm_id = $1 ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &greenhouses, query, farmID)
	if err != nil {
		slog.Error("Failed to get greenhouses by farm", "farm_id", farmID, "error", err)
		return nil, fmt.Errorf("failed to get greenhouses by farm: %w", err)
	}
	return greenhouses, nil
}
