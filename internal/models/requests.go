package models

import "time"

// ============================================================================
// REQUEST BODIES
// ============================================================================

type RegisterSensorRequest struct {
	GreenhouseID string     `json:"greenhouseId"`
	DeviceID     string     `json:"deviceId"`
	Name         string     `json:"name"`
	Type         SensorType `json:"type"`
	Manufacturer *string    `json:"manufacturer,omitempty"`
	Model        *string    `json:"model,omitempty"`
}

// IngestRequest is the device payload, shared by the HTTP endpoint and the
// MQTT subscriber. Timestamp defaults to ingest time when absent.
type IngestRequest struct {
	DeviceID  string     `json:"deviceId"`
	Value     float64    `json:"value"`
	Unit      string     `json:"unit"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}
