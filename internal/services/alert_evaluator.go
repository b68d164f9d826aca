package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/event"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/models"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/repository"
)

// AlertIntent is the outcome of threshold evaluation: at most one per
// reading.
type AlertIntent struct {
	Message string
}

type thresholdRule struct {
	sensorType models.SensorType
	matches    func(value float64) bool
	message    string
}

// Rules are checked in order and the first match wins. Sensor types without
// a rule never alert.
var thresholdRules = []thresholdRule{
	{
		sensorType: models.SensorTemperature,
		matches:    func(v float64) bool { return v < 10 || v > 35 },
		message:    "Temperature out of range",
	},
	{
		sensorType: models.SensorSoilMoisture,
		matches:    func(v float64) bool { return v < 20 },
		message:    "Low soil moisture detected",
	},
}

// EvaluateThreshold is a pure function of (sensorType, value). The safe
// range boundaries are inclusive: temperature 10 and 35 do not alert.
func EvaluateThreshold(sensorType models.SensorType, value float64) *AlertIntent {
	for _, rule := range thresholdRules {
		if rule.sensorType == sensorType && rule.matches(value) {
			return &AlertIntent{Message: rule.message}
		}
	}
	return nil
}

// IAlertPublisher fans alert events out to the notification service.
type IAlertPublisher interface {
	PublishAlert(ctx context.Context, event event.AlertNotificationEvent) error
}

// AlertEvaluator turns threshold breaches into activity records and
// notification events.
type AlertEvaluator struct {
	greenhouseRepo repository.IGreenhouseRepository
	activities     *ActivityService
	publisher      IAlertPublisher
}

// NewAlertEvaluator creates an evaluator. publisher may be nil when the
// notification queue is unavailable.
func NewAlertEvaluator(greenhouseRepo repository.IGreenhouseRepository, activities *ActivityService, publisher IAlertPublisher) *AlertEvaluator {
	return &AlertEvaluator{
		greenhouseRepo: greenhouseRepo,
		activities:     activities,
		publisher:      publisher,
	}
}

// ProcessReading evaluates one fresh reading and, on a breach, appends the
// alert activity to the farm feed. The activity keeps type
// "disease_detected" for all sensor threshold alerts: the feed consumer
// depends on that tag, so it stays even though the name no longer fits.
func (e *AlertEvaluator) ProcessReading(ctx context.Context, sensor *models.Sensor, value float64) error {
	intent := EvaluateThreshold(sensor.Type, value)
	if intent == nil {
		return nil
	}

	greenhouse, err := e.greenhouseRepo.GetByID(ctx, sensor.GreenhouseID)
	if err != nil {
		return err
	}
	if greenhouse == nil {
		return fmt.Errorf("greenhouse %s not found for sensor %s", sensor.GreenhouseID, sensor.ID)
	}

	description := fmt.Sprintf("%s: %s", intent.Message, formatValue(value))
	plant := fmt.Sprintf("Sensor: %s", sensor.Name)
	greenhouseID := sensor.GreenhouseID

	activity := &models.Activity{
		FarmID:       greenhouse.FarmID,
		GreenhouseID: &greenhouseID,
		Type:         models.ActivityDiseaseDetected,
		Title:        "Sensor Alert",
		Description:  &description,
		Plant:        &plant,
		Status:       models.StatusWarning,
	}

	if _, err := e.activities.Append(ctx, activity); err != nil {
		return err
	}

	if e.publisher != nil {
		notification := event.AlertNotificationEvent{
			FarmID:       greenhouse.FarmID.String(),
			GreenhouseID: greenhouse.ID.String(),
			SensorID:     sensor.ID.String(),
			SensorName:   sensor.Name,
			Title:        "Sensor Alert",
			Message:      intent.Message,
			Value:        value,
			Timestamp:    activity.CreatedAt,
		}
		if err := e.publisher.PublishAlert(ctx, notification); err != nil {
			// Notification delivery is best-effort; the activity record is
			// already committed.
			slog.Warn("Failed to publish alert notification",
				"sensor_id", sensor.ID,
				"error", err)
		}
	}

	return nil
}

// formatValue renders a reading value without trailing zeros, matching the
// alert descriptions the feed has always shown.
func formatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
