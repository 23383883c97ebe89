package events

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ChannelPrefix namespaces every pub/sub channel written by RedisPublisher.
const ChannelPrefix = "nubereats:"

// RedisPublisher publishes events on Redis pub/sub channels named
// ChannelPrefix + topic.
type RedisPublisher struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisPublisher(client *redis.Client, log *zap.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, log: log}
}

func (p *RedisPublisher) Publish(ctx context.Context, topic string, payload interface{}) error {
	body, err := encode(payload)
	if err != nil {
		return err
	}
	receivers, err := p.client.Publish(ctx, ChannelPrefix+topic, body).Result()
	if err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	p.log.Debug("event published", zap.String("topic", topic), zap.Int64("receivers", receivers))
	return nil
}

// Close is a no-op; the client belongs to the caller.
func (p *RedisPublisher) Close() error { return nil }
