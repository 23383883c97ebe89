// Package events publishes domain events to an external broker.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/nubereats/backend/config"
)

// TopicOrderCreated is published after an order and its items are committed.
const TopicOrderCreated = "order.created"

// OrderCreated is the payload of TopicOrderCreated.
type OrderCreated struct {
	OrderID      uint      `json:"order_id"`
	CustomerID   uint      `json:"customer_id"`
	RestaurantID uint      `json:"restaurant_id"`
	Total        int       `json:"total"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Publisher delivers an event payload under a topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload interface{}) error
	Close() error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, interface{}) error { return nil }
func (NopPublisher) Close() error                                       { return nil }

// New selects the publisher configured by cfg.EventsBackend. The redis
// backend reuses redisClient, which must then be non-nil.
func New(cfg *config.Config, redisClient *redis.Client, log *zap.Logger) (Publisher, error) {
	switch cfg.EventsBackend {
	case "", "none":
		return NopPublisher{}, nil
	case "redis":
		if redisClient == nil {
			return nil, fmt.Errorf("events backend redis requires a redis connection")
		}
		return NewRedisPublisher(redisClient, log), nil
	case "amqp":
		p, err := NewAMQPPublisher(cfg.AMQPURL, log)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unsupported events backend %q", cfg.EventsBackend)
	}
}

func encode(payload interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal event payload: %w", err)
	}
	return body, nil
}
