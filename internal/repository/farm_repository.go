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

type IFarmRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Farm, error)
	GetFirstByOwnerID(ctx context.Context, ownerID string) (*models.Farm, error)
}

type FarmRepository struct {
	db *sqlx.DB
}

func NewFarmRepository(db *sqlx.DB) IFarmRepository {
	return &FarmRepository{db: db}
}

const farmColumns = `id, owner_id, name, location, size, description, is_active, created_at, updated_at`

func (r *FarmRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Farm, error) {
	var farm models.Farm
	query := `SELECT ` + farmColumns + ` FROM farms WHERE id = $1`

	err := r.db.GetContext(ctx, &farm, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Error("Failed to get farm", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get farm: %w", err)
	}
	return &farm, nil
}

// GetFirstByOwnerID returns the oldest farm registered by the principal.
// The system assumes one farm per farmer but the data layer does not
// enforce uniqueness; callers get "the first farm found".
func (r *FarmRepository) GetFirstByOwnerID(ctx context.Context, ownerID string) (*models.Farm, error) {
	var farm models.Farm
	query := `SELECT ` + farmColumns + ` FROM farms WHERE owner_id = $1 ORDER BY created_at ASC LIMIT 1`

	err := r.db.GetContext(ctx, &farm, query, ownerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Error("Failed to get farm by owner", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("failed to get farm by owner: %w", err)
	}
	return &farm, nil
}
