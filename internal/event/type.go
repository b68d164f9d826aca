package event

import "time"

// PushNotiQueue is the queue the external notification service consumes.
const PushNotiQueue = "push_noti_events"

// AlertNotificationEvent fans a sensor threshold alert out to the
// notification service.
type AlertNotificationEvent struct {
	FarmID       string    `json:"farm_id"`
	GreenhouseID string    `json:"greenhouse_id"`
	SensorID     string    `json:"sensor_id"`
	SensorName   string    `json:"sensor_name"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	Value        float64   `json:"value"`
	Timestamp    time.Time `json:"timestamp"`
}
