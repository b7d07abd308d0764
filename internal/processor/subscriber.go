package processor

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
)

// Subscriber feeds bus messages through the processor. Redis pub/sub has no
// redelivery, so a failed message is logged and dropped rather than retried.
type Subscriber struct {
	client    *redis.Client
	topic     string
	processor *Processor
}

func NewSubscriber(client *redis.Client, topic string, p *Processor) *Subscriber {
	return &Subscriber{
		client:    client,
		topic:     topic,
		processor: p,
	}
}

func (s *Subscriber) Run(ctx context.Context) error {
	sub := s.client.Subscribe(ctx, s.topic)
	defer sub.Close()

	ch := sub.Channel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				return nil
			}

			env, err := DecodeEnvelope([]byte(msg.Payload))
			if err != nil {
				log.Printf("dropping message: %v", err)
				continue
			}

			res := s.processor.Process(ctx, env)
			if res.Success {
				log.Printf("successfully processed: %s", env.EventType)
			} else {
				log.Printf("failed to process %s: %s", env.EventType, res.Reason)
			}
		}
	}
}
