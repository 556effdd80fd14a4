// Package outbox publishes roster-change events to Kafka.
package outbox

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"example.com/activitydirectory/internal/events"
)

const (
	// EventTypeSignedUp is the event_type header for signup events.
	EventTypeSignedUp = "roster.participant_signed_up"
	// EventTypeUnregistered is the event_type header for unregister events.
	EventTypeUnregistered = "roster.participant_unregistered"
)

// RosterPublisher writes roster events to a single Kafka topic, keyed by
// activity name so consumers see per-activity ordering.
type RosterPublisher struct {
	writer *kafka.Writer
}

// NewRosterPublisher creates a RosterPublisher for the given brokers and topic.
func NewRosterPublisher(brokers []string, topic string) *RosterPublisher {
	return &RosterPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		},
	}
}

// ParticipantSignedUp implements domain.RosterEventPublisher.
func (p *RosterPublisher) ParticipantSignedUp(ctx context.Context, event events.ParticipantSignedUp) error {
	return p.publish(ctx, EventTypeSignedUp, event.Activity, event)
}

// ParticipantUnregistered implements domain.RosterEventPublisher.
func (p *RosterPublisher) ParticipantUnregistered(ctx context.Context, event events.ParticipantUnregistered) error {
	return p.publish(ctx, EventTypeUnregistered, event.Activity, event)
}

func (p *RosterPublisher) publish(ctx context.Context, eventType, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}
	return p.writer.WriteMessages(ctx, msg)
}

// Close releases the underlying writer.
func (p *RosterPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops events. Used when no brokers are configured and in tests.
type NoopPublisher struct{}

// ParticipantSignedUp implements domain.RosterEventPublisher.
func (NoopPublisher) ParticipantSignedUp(ctx context.Context, event events.ParticipantSignedUp) error {
	return nil
}

// ParticipantUnregistered implements domain.RosterEventPublisher.
func (NoopPublisher) ParticipantUnregistered(ctx context.Context, event events.ParticipantUnregistered) error {
	return nil
}
