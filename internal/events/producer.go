// Package events publishes group/membership domain events to Kafka and
// consumes them back to invalidate cached roster state. Grounded on the
// teacher's reel-service producer/consumer pair: a Kafka writer keyed by
// event type, and a reader that reacts to one event type to keep a cache
// fresh.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

type Type string

const (
	GroupCreated         Type = "group.created"
	MemberJoined         Type = "member.joined"
	MemberInvited        Type = "member.invited"
	MemberKicked         Type = "member.kicked"
	MemberRoleChanged    Type = "member.role_changed"
	GroupRenamed         Type = "group.renamed"
	GroupPasswordChanged Type = "group.password_changed"
)

type Payload struct {
	GroupID  uint64    `json:"group_id"`
	UID      uint64    `json:"uid,omitempty"`
	ActorUID uint64    `json:"actor_uid,omitempty"`
	At       time.Time `json:"at"`
}

// Producer is the publishing boundary the policy engine depends on.
type Producer interface {
	Publish(ctx context.Context, eventType Type, payload Payload)
	Close() error
}

type KafkaProducer struct {
	writer *kafka.Writer
}

func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
	return &KafkaProducer{writer: writer}
}

func (p *KafkaProducer) Publish(ctx context.Context, eventType Type, payload Payload) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to marshal domain event", "type", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(eventType),
		Value: data,
	}

	go func() {
		if err := p.writer.WriteMessages(context.Background(), msg); err != nil {
			slog.Error("failed to publish domain event", "type", eventType, "error", err)
		}
	}()
}

func (p *KafkaProducer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
