package handlers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salon-cloud/salon-api/internal/blobstore"
	"github.com/salon-cloud/salon-api/internal/events"
	"github.com/salon-cloud/salon-api/internal/httperr"
	"github.com/salon-cloud/salon-api/internal/httpresp"
	"github.com/salon-cloud/salon-api/internal/models"
	"github.com/salon-cloud/salon-api/internal/stats"
)

type BackupHandler struct {
	store  blobstore.Store
	events *events.Dispatcher
	stats  *stats.Collector
}

func NewBackupHandler(store blobstore.Store, dispatcher *events.Dispatcher, collector *stats.Collector) *BackupHandler {
	return &BackupHandler{
		store:  store,
		events: dispatcher,
		stats:  collector,
	}
}

type BackupRequest struct {
	Name    string          `json:"name"`
	Data    json.RawMessage `json:"data"`
	Version string          `json:"version"`
}

// ======================================================
// POST /storage/backup
// ======================================================
func (h *BackupHandler) Create(c *gin.Context) {
	var req BackupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err.Error(), "Failed to create backup")
		return
	}

	if req.Name == "" || len(req.Data) == 0 {
		httperr.BadRequest(c, "name and data are required", "Failed to create backup")
		return
	}

	version := req.Version
	if version == "" {
		version = "1.0"
	}

	now := time.Now().UTC()
	snapshot := models.Backup{
		Name:      req.Name,
		Data:      req.Data,
		Timestamp: now.Format(time.RFC3339),
		Version:   version,
		Metadata: models.BackupMetadata{
			RecordCount: recordCount(req.Data),
			Size:        len(req.Data),
		},
	}

	body, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		httperr.Internal(c, err.Error(), "Failed to create backup")
		return
	}

	// colons are not welcome in object keys
	stamp := strings.ReplaceAll(now.Format(time.RFC3339), ":", "-")
	fileName := fmt.Sprintf("backups/%s_%s.json", req.Name, stamp)

	if err := h.store.Write(c.Request.Context(), fileName, body, "application/json"); err != nil {
		httperr.Internal(c, err.Error(), "Failed to create backup")
		return
	}

	h.stats.Incr(c.Request.Context(), "backups")
	h.events.Dispatch(events.New("data_backed_up", map[string]any{
		"backupName":  req.Name,
		"fileName":    fileName,
		"recordCount": snapshot.Metadata.RecordCount,
	}, "salon-api"))

	httpresp.OK(c, gin.H{
		"fileName": fileName,
		"message":  "Backup created successfully",
	})
}

// recordCount counts array elements, or keys for an object payload.
func recordCount(data json.RawMessage) int {
	var asArray []json.RawMessage
	if err := json.Unmarshal(data, &asArray); err == nil {
		return len(asArray)
	}

	var asObject map[string]json.RawMessage
	if err := json.Unmarshal(data, &asObject); err == nil {
		return len(asObject)
	}

	return 1
}
