package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/salon-cloud/salon-api/internal/blobstore"
	"github.com/salon-cloud/salon-api/internal/config"
	"github.com/salon-cloud/salon-api/internal/events"
	"github.com/salon-cloud/salon-api/internal/routes"
	"github.com/salon-cloud/salon-api/internal/stats"
)

func main() {

	_ = godotenv.Load()
	cfg := config.Load()

	store := blobstore.NewS3Store(cfg)

	bus := events.NewRedisClient(cfg.RedisURL)
	publisher := events.NewRedisPublisher(bus)
	collector := stats.New(bus)

	r := gin.Default()

	routes.RegisterRoutes(r, store, publisher, collector, cfg)

	log.Printf("salon API running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
