package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/salon-cloud/salon-api/internal/blobstore"
	"github.com/salon-cloud/salon-api/internal/config"
	"github.com/salon-cloud/salon-api/internal/events"
	"github.com/salon-cloud/salon-api/internal/handlers"
	"github.com/salon-cloud/salon-api/internal/middleware"
	"github.com/salon-cloud/salon-api/internal/repository"
	"github.com/salon-cloud/salon-api/internal/stats"
)

func RegisterRoutes(
	r *gin.Engine,
	store blobstore.Store,
	publisher events.Publisher,
	collector *stats.Collector,
	cfg *config.Config,
) {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(func(c *gin.Context) {
		collector.Incr(c.Request.Context(), "requests")
		c.Next()
	})

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	dispatcher := events.NewDispatcher(publisher, cfg.EventsTopic)

	clientRepo := repository.NewClientRepository(store, dispatcher)
	appointmentRepo := repository.NewAppointmentRepository(store, clientRepo, dispatcher)
	serviceRepo := repository.NewServiceRepository(store, dispatcher)
	userRepo := repository.NewUserRepository(store)

	// ======================================================
	// HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(clientRepo)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentRepo)
	serviceHandler := handlers.NewServiceHandler(serviceRepo)
	pubsubHandler := handlers.NewPubSubHandler(publisher)
	backupHandler := handlers.NewBackupHandler(store, dispatcher, collector)
	uploadHandler := handlers.NewUploadHandler(store, dispatcher, collector)
	exportHandler := handlers.NewExportHandler(clientRepo, appointmentRepo, serviceRepo, dispatcher, collector)
	authHandler := handlers.NewAuthHandler(userRepo, cfg)
	systemHandler := handlers.NewSystemHandler(collector)

	// ======================================================
	// SYSTEM
	// ======================================================
	r.GET("/health", systemHandler.Health)
	r.GET("/stats", systemHandler.Stats)
	r.NoRoute(systemHandler.NotFound)

	// ======================================================
	// STORAGE (open, consumed by the unmodified frontend)
	// ======================================================
	storage := r.Group("/storage")
	{
		storage.GET("/clients", clientHandler.List)
		storage.POST("/clients", clientHandler.Create)
		storage.PUT("/clients", clientHandler.Update)
		storage.DELETE("/clients", clientHandler.Delete)

		storage.GET("/appointments", appointmentHandler.List)
		storage.POST("/appointments", appointmentHandler.Create)
		storage.PUT("/appointments", appointmentHandler.Update)
		storage.DELETE("/appointments", appointmentHandler.Delete)

		storage.GET("/services", serviceHandler.List)
		storage.POST("/services", serviceHandler.Create)
		storage.PUT("/services", serviceHandler.Update)
		storage.DELETE("/services", serviceHandler.Delete)
	}

	// ======================================================
	// PUB/SUB
	// ======================================================
	r.POST("/pubsub/publish", pubsubHandler.Publish)

	// ======================================================
	// AUTH
	// ======================================================
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	// ======================================================
	// ADMIN (JWT)
	// ======================================================
	secured := r.Group("/storage")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.POST("/backup", backupHandler.Create)
		secured.POST("/upload", uploadHandler.Upload)
		secured.GET("/export", exportHandler.Export)
	}
}
