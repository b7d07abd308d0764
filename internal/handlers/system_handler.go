package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salon-cloud/salon-api/internal/httpresp"
	"github.com/salon-cloud/salon-api/internal/stats"
)

type SystemHandler struct {
	stats *stats.Collector
}

func NewSystemHandler(collector *stats.Collector) *SystemHandler {
	return &SystemHandler{stats: collector}
}

// ======================================================
// GET /health — static capability report
// ======================================================
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "salon-api",
		"version":   "3.0",
		"services": gin.H{
			"storage": true,
			"pubsub":  true,
		},
	})
}

// ======================================================
// GET /stats — real counters
// ======================================================
func (h *SystemHandler) Stats(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"stats":     h.stats.Snapshot(c.Request.Context()),
	})
}

// ======================================================
// NoRoute
// ======================================================
func (h *SystemHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"message": "Endpoint not found",
		"availableEndpoints": []string{
			"/health",
			"/stats",
			"/storage/clients (GET, POST, PUT, DELETE)",
			"/storage/appointments (GET, POST, PUT, DELETE)",
			"/storage/services (GET, POST, PUT, DELETE)",
			"/storage/backup (POST)",
			"/storage/upload (POST)",
			"/storage/export (GET)",
			"/pubsub/publish (POST)",
			"/auth/register (POST)",
			"/auth/login (POST)",
		},
	})
}
