package handlers

import (
	"io"
	"log"
	"path"

	"github.com/gin-gonic/gin"

	"github.com/salon-cloud/salon-api/internal/blobstore"
	"github.com/salon-cloud/salon-api/internal/events"
	"github.com/salon-cloud/salon-api/internal/httperr"
	"github.com/salon-cloud/salon-api/internal/httpresp"
	"github.com/salon-cloud/salon-api/internal/images"
	"github.com/salon-cloud/salon-api/internal/stats"
)

const thumbnailMaxEdge = 320

var uploadFolders = map[string]bool{
	"uploads": true,
	"exports": true,
	"temp":    true,
}

type UploadHandler struct {
	store  blobstore.Store
	events *events.Dispatcher
	stats  *stats.Collector
}

func NewUploadHandler(store blobstore.Store, dispatcher *events.Dispatcher, collector *stats.Collector) *UploadHandler {
	return &UploadHandler{
		store:  store,
		events: dispatcher,
		stats:  collector,
	}
}

// ======================================================
// POST /storage/upload (multipart)
// ======================================================
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "file is required", "Failed to upload file")
		return
	}

	folder := c.DefaultPostForm("folder", "uploads")
	if !uploadFolders[folder] {
		httperr.BadRequest(c, "invalid folder", "Failed to upload file")
		return
	}

	name := c.PostForm("name")
	if name == "" {
		name = file.Filename
	}
	name = path.Base(name)
	if name == "" || name == "." || name == "/" {
		httperr.BadRequest(c, "invalid file name", "Failed to upload file")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, err.Error(), "Failed to upload file")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		httperr.Internal(c, err.Error(), "Failed to upload file")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := folder + "/" + name
	if err := h.store.Write(c.Request.Context(), key, data, contentType); err != nil {
		httperr.Internal(c, err.Error(), "Failed to upload file")
		return
	}

	// image uploads get a webp preview; a failed preview never fails the
	// upload. The preview lives next to its original so temp uploads do not
	// leak previews into the uploads tree.
	thumbKey := ""
	if images.IsSupported(contentType) {
		if thumb, err := images.Thumbnail(data, thumbnailMaxEdge); err != nil {
			log.Printf("thumbnail failed for %s: %v", key, err)
		} else {
			thumbKey = folder + "/thumbs/" + name + ".webp"
			if err := h.store.Write(c.Request.Context(), thumbKey, thumb, "image/webp"); err != nil {
				log.Printf("thumbnail write failed for %s: %v", thumbKey, err)
				thumbKey = ""
			}
		}
	}

	h.stats.Incr(c.Request.Context(), "uploads")
	h.events.Dispatch(events.New("file_uploaded", map[string]any{
		"fileName":    key,
		"size":        len(data),
		"contentType": contentType,
		"thumbnail":   thumbKey != "",
	}, "salon-api"))

	body := gin.H{
		"fileName": key,
		"message":  "File uploaded successfully",
	}
	if thumbKey != "" {
		body["thumbnail"] = thumbKey
	}

	httpresp.OK(c, body)
}
