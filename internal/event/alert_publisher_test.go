package event

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertNotificationEvent_WireFormat(t *testing.T) {
	ts := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	evt := AlertNotificationEvent{
		FarmID:       "farm-1",
		GreenhouseID: "gh-1",
		SensorID:     "sensor-1",
		SensorName:   "Temp Nord",
		Title:        "Sensor Alert",
		Message:      "Temperature out of range",
		Value:        36.5,
		Timestamp:    ts,
	}

	body, err := json.Marshal(evt)
	require.NoError(t, err)

	// The notification service consumes these exact keys; renaming any of
	// them breaks delivery silently.
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	for _, key := range []string{
		"farm_id", "greenhouse_id", "sensor_id", "sensor_name",
		"title", "message", "value", "timestamp",
	} {
		assert.Contains(t, decoded, key)
	}
	assert.Equal(t, "Temperature out of range", decoded["message"])
	assert.Equal(t, 36.5, decoded["value"])
}

func TestPushNotiQueueName(t *testing.T) {
	assert.Equal(t, "push_noti_events", PushNotiQueue, "queue name is shared with the consumer deployment")
}
