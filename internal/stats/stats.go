package stats

import (
	"context"
	"log"
	"sync"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "salon:stats:"

// counterNames are the counters /stats reports. Real numbers, incremented
// where the work happens, replacing the randomized placeholders the
// original endpoint served.
var counterNames = []string{
	"requests",
	"events_processed",
	"uploads",
	"backups",
	"exports",
}

// Collector counts in redis so the API and the event processor share one
// set of numbers. Without a redis client it falls back to process-local
// counters.
type Collector struct {
	client *redis.Client

	mu    sync.Mutex
	local map[string]int64
}

func New(client *redis.Client) *Collector {
	return &Collector{
		client: client,
		local:  make(map[string]int64),
	}
}

func (c *Collector) Incr(ctx context.Context, name string) {
	if c == nil {
		return
	}

	if c.client != nil {
		if err := c.client.Incr(ctx, keyPrefix+name).Err(); err != nil {
			log.Printf("stats incr failed (%s): %v", name, err)
		}
		return
	}

	c.mu.Lock()
	c.local[name]++
	c.mu.Unlock()
}

func (c *Collector) Snapshot(ctx context.Context) map[string]int64 {
	out := make(map[string]int64, len(counterNames))

	if c.client != nil {
		for _, name := range counterNames {
			n, err := c.client.Get(ctx, keyPrefix+name).Int64()
			if err != nil && err != redis.Nil {
				log.Printf("stats read failed (%s): %v", name, err)
			}
			out[name] = n
		}
		return out
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, name := range counterNames {
		out[name] = c.local[name]
	}
	return out
}
