package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare-service/internal/store"
	"petcare-service/internal/telemetry"
)

// RegisterDebugRoutes wires debug-only endpoints.
func RegisterDebugRoutes(router *gin.Engine, emitter *telemetry.AuditEmitter, pets store.PetStore, appointments store.AppointmentStore, community store.CommunityStore, enabled bool) {
	if !enabled {
		return
	}

	router.GET("/debug/audit-test", func(c *gin.Context) {
		if emitter == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "audit emitter not configured"})
			return
		}
		emitter.Emit(c.Request.Context(), "INFO", "audit test", requestIDFromContext(c), userIDFromContext(c))
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Collection sizes, handy when poking at the in-memory state.
	router.GET("/debug/state", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"pets":         len(pets.ListPets()),
			"appointments": len(appointments.ListAppointments()),
			"groups":       len(community.ListGroups()),
		})
	})
}
