package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AlertPublisher fans threshold alerts out to the notification service.
// Callers treat a publish failure as best-effort; the activity record the
// alert came from is already committed.
type AlertPublisher struct {
	conn *RabbitMQConnection
}

func NewAlertPublisher(conn *RabbitMQConnection) *AlertPublisher {
	return &AlertPublisher{conn: conn}
}

// PublishAlert publishes one alert event to the queue declared at connect.
// Safe for concurrent use from overlapping ingests.
func (p *AlertPublisher) PublishAlert(ctx context.Context, event AlertNotificationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	err = p.conn.Channel.PublishWithContext(
		ctx,
		"",            // default exchange
		PushNotiQueue, // routing key (queue name)
		false,         // mandatory
		false,         // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    event.Timestamp,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish alert event: %w", err)
	}

	slog.Info("Alert event published",
		"queue", PushNotiQueue,
		"sensor_id", event.SensorID,
		"message", event.Message,
	)

	return nil
}
