package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare-service/internal/models"
	"petcare-service/internal/store"
)

// HomeHandler serves the landing summary for the logged-in user.
type HomeHandler struct {
	pets         store.PetStore
	appointments store.AppointmentStore
}

// NewHomeHandler constructs a HomeHandler.
func NewHomeHandler(pets store.PetStore, appointments store.AppointmentStore) *HomeHandler {
	return &HomeHandler{pets: pets, appointments: appointments}
}

// Home handles GET /home: pet count and upcoming scheduled appointments.
func (h *HomeHandler) Home(c *gin.Context) {
	upcoming := make([]models.Appointment, 0)
	for _, a := range h.appointments.ListAppointments() {
		if a.Status == models.AppointmentScheduled {
			upcoming = append(upcoming, a)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"user_name":             c.GetString("userName"),
		"pet_count":             len(h.pets.ListPets()),
		"upcoming_count":        len(upcoming),
		"upcoming_appointments": upcoming,
	})
}
