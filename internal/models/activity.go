package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/utils"
)

// Activity is an immutable farm-scoped event record shown in the feed.
type Activity struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	FarmID       uuid.UUID      `json:"farm_id" db:"farm_id"`
	GreenhouseID *uuid.UUID     `json:"greenhouse_id,omitempty" db:"greenhouse_id"`
	Type         ActivityType   `json:"type" db:"type"`
	Title        string         `json:"title" db:"title"`
	Description  *string        `json:"description,omitempty" db:"description"`
	Plant        *string        `json:"plant,omitempty" db:"plant"`
	Status       ActivityStatus `json:"status" db:"status"`
	Metadata     utils.JSONMap  `json:"metadata,omitempty" db:"metadata"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
}

// ActivityWithGreenhouse carries the joined greenhouse display name for
// presentation.
type ActivityWithGreenhouse struct {
	Activity
	GreenhouseName *string `db:"greenhouse_name"`
}
