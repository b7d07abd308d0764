package events

import (
	"context"
	"log"
	"time"
)

// Dispatcher is the fire-and-forget front of a Publisher. Domain events from
// the request path go through here: a full queue drops the event rather than
// blocking a mutation, and publish failures never reach the caller.
type Dispatcher struct {
	publisher Publisher
	topic     string
	queue     chan Envelope
	done      chan struct{}
}

func NewDispatcher(publisher Publisher, topic string) *Dispatcher {
	d := &Dispatcher{
		publisher: publisher,
		topic:     topic,
		queue:     make(chan Envelope, 100),
		done:      make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for env := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if _, err := d.publisher.Publish(ctx, d.topic, env); err != nil {
			log.Printf("event publish failed (%s): %v", env.EventType, err)
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(env Envelope) {
	if d == nil {
		return
	}

	select {
	case d.queue <- env:
	default:
		// queue full: drop, never break the API
		log.Printf("event queue full, dropping %s", env.EventType)
	}
}

// Close drains the queue and stops the worker. Only the owner of the
// dispatcher should call it.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
