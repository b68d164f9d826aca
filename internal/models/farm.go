package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/utils"
)

// ============================================================================
// FARM & GREENHOUSE
// ============================================================================

type Farm struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	OwnerID     string        `json:"owner_id" db:"owner_id"`
	Name        string        `json:"name" db:"name"`
	Location    utils.JSONMap `json:"location,omitempty" db:"location"`
	Size        utils.JSONMap `json:"size,omitempty" db:"size"`
	Description *string       `json:"description,omitempty" db:"description"`
	IsActive    bool          `json:"is_active" db:"is_active"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

type Greenhouse struct {
	ID                uuid.UUID        `json:"id" db:"id"`
	FarmID            uuid.UUID        `json:"farm_id" db:"farm_id"`
	Name              string           `json:"name" db:"name"`
	CropType          string           `json:"crop_type" db:"crop_type"`
	Dimensions        utils.JSONMap    `json:"dimensions,omitempty" db:"dimensions"`
	Status            GreenhouseStatus `json:"status" db:"status"`
	OptimalConditions utils.JSONMap    `json:"optimal_conditions,omitempty" db:"optimal_conditions"`
	CreatedAt         time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at" db:"updated_at"`
}
