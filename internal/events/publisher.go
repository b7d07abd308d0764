package events

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// PublishResult reports a delivery attempt, so callers can assert on it
// instead of relying on log lines. Ignoring it keeps publish fire-and-forget.
type PublishResult struct {
	MessageID string
	Topic     string
}

type Publisher interface {
	Publish(ctx context.Context, topic string, env Envelope) (PublishResult, error)

	// PublishRaw forwards an already-encoded payload verbatim, for the
	// pass-through /pubsub/publish endpoint.
	PublishRaw(ctx context.Context, topic string, payload []byte) (PublishResult, error)
}

type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, topic string, env Envelope) (PublishResult, error) {
	data, err := json.Marshal(env)
	if err != nil {
		return PublishResult{}, err
	}
	return p.PublishRaw(ctx, topic, data)
}

func (p *RedisPublisher) PublishRaw(ctx context.Context, topic string, payload []byte) (PublishResult, error) {
	if err := p.client.Publish(ctx, topic, payload).Err(); err != nil {
		return PublishResult{}, err
	}

	return PublishResult{
		MessageID: uuid.NewString(),
		Topic:     topic,
	}, nil
}

// NewRedisClient accepts either a redis URL or a bare host:port address.
func NewRedisClient(rawURL string) *redis.Client {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		opts = &redis.Options{Addr: rawURL}
	}
	return redis.NewClient(opts)
}

// Compile-time check
var _ Publisher = (*RedisPublisher)(nil)
