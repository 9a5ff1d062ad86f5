package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare-service/internal/models"
	"petcare-service/internal/store"
	"petcare-service/internal/telemetry"
)

// AppointmentHandler manages appointment endpoints.
type AppointmentHandler struct {
	appointments store.AppointmentStore
	audit        *telemetry.AuditEmitter
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(appointments store.AppointmentStore, audit *telemetry.AuditEmitter) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments, audit: audit}
}

// ListAppointments returns appointments sorted ascending by date.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"appointments": h.appointments.ListAppointments()})
}

// CreateAppointment handles POST /appointments. Status defaults to scheduled.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req struct {
		PetID      string `json:"pet_id" binding:"required"`
		ClinicName string `json:"clinic_name" binding:"required"`
		Date       string `json:"date" binding:"required"`
		Time       string `json:"time" binding:"required"`
		Type       string `json:"type"`
		Status     string `json:"status"`
		Notes      string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		emitAudit(c, h.audit, "ERROR", "invalid request payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.appointments.AddAppointment(store.AddAppointmentInput{
		PetID:      req.PetID,
		ClinicName: req.ClinicName,
		Date:       req.Date,
		Time:       req.Time,
		Type:       req.Type,
		Status:     models.AppointmentStatus(req.Status),
		Notes:      req.Notes,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			emitAudit(c, h.audit, "ERROR", "pet not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "pet not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not schedule appointment"})
		return
	}

	emitAudit(c, h.audit, "INFO", "Appointment scheduled")
	c.JSON(http.StatusCreated, gin.H{
		"appointment": appt,
		"message":     "Appointment scheduled successfully",
	})
}

// UpdateAppointment handles PATCH /appointments/:appointment_id. Changing
// the pet re-snapshots the pet name.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var req struct {
		PetID      *string `json:"pet_id"`
		ClinicName *string `json:"clinic_name"`
		Date       *string `json:"date"`
		Time       *string `json:"time"`
		Type       *string `json:"type"`
		Status     *string `json:"status"`
		Notes      *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := store.UpdateAppointmentInput{
		PetID:      req.PetID,
		ClinicName: req.ClinicName,
		Date:       req.Date,
		Time:       req.Time,
		Type:       req.Type,
		Notes:      req.Notes,
	}
	if req.Status != nil {
		status := models.AppointmentStatus(*req.Status)
		in.Status = &status
	}

	appt, err := h.appointments.UpdateAppointment(c.Param("appointment_id"), in)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			emitAudit(c, h.audit, "ERROR", "appointment not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update appointment"})
		return
	}

	emitAudit(c, h.audit, "INFO", "Appointment updated")
	c.JSON(http.StatusOK, gin.H{
		"appointment": appt,
		"message":     "Appointment updated successfully",
	})
}

// DeleteAppointment handles DELETE /appointments/:appointment_id.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	_, err := h.appointments.DeleteAppointment(c.Param("appointment_id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			emitAudit(c, h.audit, "ERROR", "appointment not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete appointment"})
		return
	}

	emitAudit(c, h.audit, "INFO", "Appointment cancelled")
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}
