package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare-service/internal/store"
	"petcare-service/internal/telemetry"
)

// PlanHandler serves the read-only health plan catalog.
type PlanHandler struct {
	plans store.PlanStore
	audit *telemetry.AuditEmitter
}

// NewPlanHandler constructs a PlanHandler.
func NewPlanHandler(plans store.PlanStore, audit *telemetry.AuditEmitter) *PlanHandler {
	return &PlanHandler{plans: plans, audit: audit}
}

// ListPlans returns the plan catalog.
func (h *PlanHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": h.plans.ListHealthPlans()})
}

// SelectPlan handles POST /plans/:plan_id/select. Selecting a plan only
// produces a confirmation; enrollment happens outside the platform.
func (h *PlanHandler) SelectPlan(c *gin.Context) {
	plan, err := h.plans.GetHealthPlan(c.Param("plan_id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load plan"})
		return
	}

	emitAudit(c, h.audit, "INFO", "Plan selected")
	c.JSON(http.StatusOK, gin.H{
		"plan":    plan,
		"message": fmt.Sprintf("Plan %s selected! Contact %s to finish enrollment.", plan.Name, plan.Provider),
	})
}
