package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/connectify-dev/groupuser-service/internal/cache"
	"github.com/segmentio/kafka-go"
)

// RosterConsumer invalidates the per-uid username cache entry of the member
// a role change touches. Roles themselves are not cached (GetGroupInfo reads
// them from the repository), so this only refreshes roster names. Shaped after the teacher's batched
// Kafka reader, but reacts per-message instead of accumulating counts:
// there is nothing here to batch, only a cache key to drop.
type RosterConsumer struct {
	reader *kafka.Reader
	cache  *cache.Client
	logger *slog.Logger
	stopCh chan struct{}
	doneCh chan struct{}
}

type RosterConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

func DefaultRosterConsumerConfig(brokers []string, topic string) RosterConsumerConfig {
	return RosterConsumerConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: "groupuser-roster-cache",
	}
}

func NewRosterConsumer(cfg RosterConsumerConfig, cacheClient *cache.Client, logger *slog.Logger) *RosterConsumer {
	if logger == nil {
		logger = slog.Default()
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          cfg.Topic,
		GroupID:        cfg.GroupID,
		MinBytes:       1e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
	})
	return &RosterConsumer{
		reader: reader,
		cache:  cacheClient,
		logger: logger,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

func (c *RosterConsumer) Start(ctx context.Context) {
	go c.consume(ctx)
}

func (c *RosterConsumer) consume(ctx context.Context) {
	defer close(c.doneCh)

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stopCh:
			return
		default:
			msg, err := c.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				c.logger.Error("failed to read roster event", "error", err)
				continue
			}

			if Type(msg.Key) != MemberRoleChanged {
				continue
			}

			var payload Payload
			if err := json.Unmarshal(msg.Value, &payload); err != nil {
				c.logger.Error("failed to unmarshal roster event", "error", err)
				continue
			}

			c.invalidate(ctx, payload.UID)
		}
	}
}

func (c *RosterConsumer) invalidate(ctx context.Context, uid uint64) {
	if c.cache == nil {
		return
	}
	key := fmt.Sprintf("groupuser:username:%d", uid)
	if err := c.cache.Del(ctx, key); err != nil {
		c.logger.Error("failed to invalidate roster cache entry", "uid", uid, "error", err)
	}
}

func (c *RosterConsumer) Stop() error {
	close(c.stopCh)
	<-c.doneCh
	return c.reader.Close()
}
