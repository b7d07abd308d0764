package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/salon-cloud/salon-api/internal/config"
	"github.com/salon-cloud/salon-api/internal/events"
	"github.com/salon-cloud/salon-api/internal/processor"
	"github.com/salon-cloud/salon-api/internal/stats"
)

func main() {

	_ = godotenv.Load()
	cfg := config.Load()

	bus := events.NewRedisClient(cfg.RedisURL)
	publisher := events.NewRedisPublisher(bus)
	collector := stats.New(bus)

	p := processor.New(publisher, cfg.EventsTopic, collector)
	sub := processor.NewSubscriber(bus, cfg.EventsTopic, p)

	log.Printf("salon event processor listening on %q", cfg.EventsTopic)
	if err := sub.Run(context.Background()); err != nil {
		log.Fatalf("subscriber stopped: %v", err)
	}
}
