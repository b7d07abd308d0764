package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/salon-cloud/salon-api/internal/httperr"
	"github.com/salon-cloud/salon-api/internal/httpresp"
	"github.com/salon-cloud/salon-api/internal/models"
	"github.com/salon-cloud/salon-api/internal/repository"
)

type AppointmentHandler struct {
	repo *repository.AppointmentRepository
}

func NewAppointmentHandler(repo *repository.AppointmentRepository) *AppointmentHandler {
	return &AppointmentHandler{repo: repo}
}

// ======================================================
// GET /storage/appointments
// ======================================================
func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err.Error(), "Failed to retrieve appointments")
		return
	}

	httpresp.List(c, "appointments", appointments)
}

// ======================================================
// POST /storage/appointments
// ======================================================
func (h *AppointmentHandler) Create(c *gin.Context) {
	var in models.Appointment
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, err.Error(), "Failed to create appointment")
		return
	}

	appointment, err := h.repo.Create(c.Request.Context(), in)
	if err != nil {
		writeRepoError(c, err, "Failed to create appointment")
		return
	}

	httpresp.OK(c, gin.H{
		"appointment": appointment,
		"message":     "Appointment created successfully",
	})
}

// ======================================================
// PUT /storage/appointments (id in body)
// ======================================================
func (h *AppointmentHandler) Update(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, err.Error(), "Failed to update appointment")
		return
	}

	id, _ := patch["id"].(string)
	if id == "" {
		httperr.BadRequest(c, "appointment ID is required", "Failed to update appointment")
		return
	}

	appointment, err := h.repo.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeRepoError(c, err, "Failed to update appointment")
		return
	}

	httpresp.OK(c, gin.H{
		"appointment": appointment,
		"message":     "Appointment updated successfully",
	})
}

// ======================================================
// DELETE /storage/appointments?id=...
// ======================================================
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		httperr.BadRequest(c, "appointment ID is required", "Failed to delete appointment")
		return
	}

	appointment, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, err, "Failed to delete appointment")
		return
	}

	httpresp.OK(c, gin.H{
		"deletedAppointment": appointment,
		"message":            "Appointment deleted successfully",
	})
}
