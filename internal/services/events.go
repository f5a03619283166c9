package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/clicker/internal/logger"
	"github.com/sbilibin2017/clicker/internal/models"
	"github.com/sbilibin2017/clicker/internal/repositories"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventPublisher publishes game events to Kafka. A nil writer disables publishing.
type EventPublisher struct {
	writer KafkaWriter
}

// NewEventPublisher creates a new EventPublisher.
func NewEventPublisher(writer KafkaWriter) *EventPublisher {
	return &EventPublisher{writer: writer}
}

// newEvent fills the identity fields of a game event.
func newEvent(operation string, userID, score, delta int64) models.GameEvent {
	return models.GameEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		Operation: operation,
		Score:     score,
		Delta:     delta,
	}
}

// Publish writes the event keyed by user id once the surrounding transaction
// commits. Failures are logged and never returned to the caller.
func (p *EventPublisher) Publish(ctx context.Context, event models.GameEvent) {
	if p == nil || p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}
	repositories.AfterCommit(ctx, func() { p.write(ctx, event) })
}

func (p *EventPublisher) write(ctx context.Context, event models.GameEvent) {

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal game event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.UserID, 10)),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish game event", "event_id", event.EventID, "operation", event.Operation, "error", err)
		return
	}
	logger.Log.Infow("Game event published", "event_id", event.EventID, "operation", event.Operation, "user_id", event.UserID)
}
