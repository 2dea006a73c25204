package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"courtside/internal/shared/logger"
)

// RedisLivePublisher pushes live inquiry events onto Redis Pub/Sub channels.
// The gateway that holds websocket connections subscribes on the other side;
// this process only ever publishes.
type RedisLivePublisher struct {
	client *redis.Client
	prefix string
	logger logger.Interface
}

// NewRedisLivePublisher creates a Redis-backed publisher. prefix namespaces
// every channel so multiple deployments can share one Redis.
func NewRedisLivePublisher(client *redis.Client, prefix string, logger logger.Interface) *RedisLivePublisher {
	return &RedisLivePublisher{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

func (p *RedisLivePublisher) Publish(ctx context.Context, channel string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal live event: %w", err)
	}

	name := p.channelName(channel)
	if err := p.client.Publish(ctx, name, data).Err(); err != nil {
		return fmt.Errorf("failed to publish live event: %w", err)
	}

	p.logger.Debugw("live event published", "channel", name)
	return nil
}

func (p *RedisLivePublisher) channelName(channel string) string {
	if p.prefix == "" {
		return channel
	}
	return p.prefix + ":" + channel
}
