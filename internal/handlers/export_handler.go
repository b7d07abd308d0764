package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"

	"github.com/salon-cloud/salon-api/internal/events"
	"github.com/salon-cloud/salon-api/internal/httperr"
	"github.com/salon-cloud/salon-api/internal/httpresp"
	"github.com/salon-cloud/salon-api/internal/repository"
	"github.com/salon-cloud/salon-api/internal/stats"
)

type ExportHandler struct {
	clients      *repository.ClientRepository
	appointments *repository.AppointmentRepository
	services     *repository.ServiceRepository
	events       *events.Dispatcher
	stats        *stats.Collector
}

func NewExportHandler(
	clients *repository.ClientRepository,
	appointments *repository.AppointmentRepository,
	services *repository.ServiceRepository,
	dispatcher *events.Dispatcher,
	collector *stats.Collector,
) *ExportHandler {
	return &ExportHandler{
		clients:      clients,
		appointments: appointments,
		services:     services,
		events:       dispatcher,
		stats:        collector,
	}
}

// ======================================================
// GET /storage/export?collection=...&format=json|csv
// ======================================================
func (h *ExportHandler) Export(c *gin.Context) {
	collection := c.Query("collection")
	format := c.DefaultQuery("format", "json")

	if format != "json" && format != "csv" {
		httperr.BadRequest(c, "unsupported format: "+format, "Failed to export data")
		return
	}

	var (
		count int
		body  any
		csv   string
		err   error
	)

	switch collection {
	case "clients":
		items, e := h.clients.List(c.Request.Context())
		err, count, body = e, len(items), items
		if err == nil && format == "csv" {
			csv, err = gocsv.MarshalString(&items)
		}
	case "appointments":
		items, e := h.appointments.List(c.Request.Context())
		err, count, body = e, len(items), items
		if err == nil && format == "csv" {
			csv, err = gocsv.MarshalString(&items)
		}
	case "services":
		items, e := h.services.List(c.Request.Context())
		err, count, body = e, len(items), items
		if err == nil && format == "csv" {
			csv, err = gocsv.MarshalString(&items)
		}
	default:
		httperr.BadRequest(c, "unknown collection: "+collection, "Failed to export data")
		return
	}

	if err != nil {
		httperr.Internal(c, err.Error(), "Failed to export data")
		return
	}

	h.stats.Incr(c.Request.Context(), "exports")
	h.events.Dispatch(events.New("export_requested", map[string]any{
		"collection": collection,
		"format":     format,
		"count":      count,
	}, "salon-api"))

	if format == "csv" {
		fileName := fmt.Sprintf("%s_%s.csv", collection, time.Now().UTC().Format("2006-01-02"))
		c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
		c.Data(http.StatusOK, "text/csv", []byte(csv))
		return
	}

	httpresp.OK(c, gin.H{
		"collection": collection,
		"count":      count,
		"data":       body,
	})
}
