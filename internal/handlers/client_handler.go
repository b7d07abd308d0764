package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/salon-cloud/salon-api/internal/httperr"
	"github.com/salon-cloud/salon-api/internal/httpresp"
	"github.com/salon-cloud/salon-api/internal/models"
	"github.com/salon-cloud/salon-api/internal/repository"
)

type ClientHandler struct {
	repo *repository.ClientRepository
}

func NewClientHandler(repo *repository.ClientRepository) *ClientHandler {
	return &ClientHandler{repo: repo}
}

// ======================================================
// GET /storage/clients
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err.Error(), "Failed to retrieve clients")
		return
	}

	httpresp.List(c, "clients", clients)
}

// ======================================================
// POST /storage/clients
// ======================================================
func (h *ClientHandler) Create(c *gin.Context) {
	var in models.Client
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, err.Error(), "Failed to create client")
		return
	}

	client, err := h.repo.Create(c.Request.Context(), in)
	if err != nil {
		writeRepoError(c, err, "Failed to create client")
		return
	}

	httpresp.OK(c, gin.H{
		"client":  client,
		"message": "Client created successfully",
	})
}

// ======================================================
// PUT /storage/clients (id in body)
// ======================================================
func (h *ClientHandler) Update(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, err.Error(), "Failed to update client")
		return
	}

	id, _ := patch["id"].(string)
	if id == "" {
		httperr.BadRequest(c, "client ID is required", "Failed to update client")
		return
	}

	client, err := h.repo.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeRepoError(c, err, "Failed to update client")
		return
	}

	httpresp.OK(c, gin.H{
		"client":  client,
		"message": "Client updated successfully",
	})
}

// ======================================================
// DELETE /storage/clients?id=...
// ======================================================
func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		httperr.BadRequest(c, "client ID is required", "Failed to delete client")
		return
	}

	client, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, err, "Failed to delete client")
		return
	}

	httpresp.OK(c, gin.H{
		"deletedClient": client,
		"message":       "Client deleted successfully",
	})
}
