package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/config"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/models"
)

// Ingestor is the write path the subscriber feeds into.
type Ingestor interface {
	Ingest(ctx context.Context, req models.IngestRequest) error
}

// Subscriber bridges device publishes on an MQTT topic into the ingestion
// pipeline. Payloads use the same JSON body as the HTTP ingest endpoint.
type Subscriber struct {
	client    paho.Client
	topic     string
	ingestor  Ingestor
	opTimeout time.Duration
}

func NewSubscriber(cfg config.MQTTConfig, ingestor Ingestor, opTimeout time.Duration) *Subscriber {
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetAutoReconnect(true).
		SetConnectRetry(true)

	return &Subscriber{
		client:    paho.NewClient(opts),
		topic:     cfg.Topic,
		ingestor:  ingestor,
		opTimeout: opTimeout,
	}
}

// Start connects and subscribes at QoS 1. Malformed or rejected messages are
// logged and dropped; the subscription stays up.
func (s *Subscriber) Start() error {
	if token := s.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	token := s.client.Subscribe(s.topic, 1, s.handleMessage)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", s.topic, token.Error())
	}

	slog.Info("MQTT subscriber started", "topic", s.topic)
	return nil
}

func (s *Subscriber) handleMessage(_ paho.Client, msg paho.Message) {
	var req models.IngestRequest
	if err := json.Unmarshal(msg.Payload(), &req); err != nil {
		slog.Warn("Dropping malformed MQTT payload", "topic", msg.Topic(), "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.opTimeout)
	defer cancel()

	if err := s.ingestor.Ingest(ctx, req); err != nil {
		slog.Error("MQTT ingest failed",
			"device_id", req.DeviceID,
			"error", err)
	}
}

// Stop unsubscribes and disconnects, allowing in-flight handlers to finish.
func (s *Subscriber) Stop() {
	if s.client.IsConnected() {
		s.client.Unsubscribe(s.topic)
		s.client.Disconnect(250)
	}
	slog.Info("MQTT subscriber stopped")
}
