package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/salon-cloud/salon-api/internal/httperr"
	"github.com/salon-cloud/salon-api/internal/httpresp"
	"github.com/salon-cloud/salon-api/internal/models"
	"github.com/salon-cloud/salon-api/internal/repository"
)

type ServiceHandler struct {
	repo *repository.ServiceRepository
}

func NewServiceHandler(repo *repository.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{repo: repo}
}

type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	CategoryID  string  `json:"categoryId"`
	Description string  `json:"description"`
	Active      *bool   `json:"active"`
}

// ======================================================
// GET /storage/services
// ======================================================
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err.Error(), "Failed to retrieve services")
		return
	}

	httpresp.List(c, "services", services)
}

// ======================================================
// POST /storage/services
// ======================================================
func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err.Error(), "Failed to create service")
		return
	}

	// active defaults to true when omitted
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	service, err := h.repo.Create(c.Request.Context(), models.Service{
		Name:        req.Name,
		Price:       req.Price,
		Duration:    req.Duration,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Active:      active,
	})
	if err != nil {
		writeRepoError(c, err, "Failed to create service")
		return
	}

	httpresp.Created(c, gin.H{
		"service": service,
		"message": "Service created successfully",
	})
}

// ======================================================
// PUT /storage/services?id=...
// ======================================================
func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		httperr.BadRequest(c, "service ID is required", "Failed to update service")
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, err.Error(), "Failed to update service")
		return
	}

	service, err := h.repo.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeRepoError(c, err, "Failed to update service")
		return
	}

	httpresp.OK(c, gin.H{
		"service": service,
		"message": "Service updated successfully",
	})
}

// ======================================================
// DELETE /storage/services?id=...
// ======================================================
func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		httperr.BadRequest(c, "service ID is required", "Failed to delete service")
		return
	}

	service, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, err, "Failed to delete service")
		return
	}

	httpresp.OK(c, gin.H{
		"deletedService": service,
		"message":        "Service deleted successfully",
	})
}
