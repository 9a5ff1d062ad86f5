package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare-service/internal/store"
	"petcare-service/internal/telemetry"
)

// PetHandler manages pet endpoints.
type PetHandler struct {
	pets  store.PetStore
	plans store.PlanStore
	audit *telemetry.AuditEmitter
}

// NewPetHandler constructs a PetHandler.
func NewPetHandler(pets store.PetStore, plans store.PlanStore, audit *telemetry.AuditEmitter) *PetHandler {
	return &PetHandler{pets: pets, plans: plans, audit: audit}
}

// ListPets returns all registered pets.
func (h *PetHandler) ListPets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pets": h.pets.ListPets()})
}

// CreatePet handles POST /pets.
func (h *PetHandler) CreatePet(c *gin.Context) {
	var req struct {
		Name             string  `json:"name" binding:"required"`
		Species          string  `json:"species" binding:"required"`
		Breed            string  `json:"breed"`
		Age              int     `json:"age"`
		AgeUnit          string  `json:"age_unit"`
		Weight           float64 `json:"weight"`
		Photo            string  `json:"photo"`
		HealthPlanID     string  `json:"health_plan_id"`
		SpecialAttention bool    `json:"special_attention"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		emitAudit(c, h.audit, "ERROR", "invalid request payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pet, err := h.pets.AddPet(store.AddPetInput{
		Name:             req.Name,
		Species:          req.Species,
		Breed:            req.Breed,
		Age:              req.Age,
		AgeUnit:          req.AgeUnit,
		Weight:           req.Weight,
		Photo:            req.Photo,
		OwnerID:          c.GetString("userID"),
		HealthPlanID:     req.HealthPlanID,
		SpecialAttention: req.SpecialAttention,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not add pet"})
		return
	}

	emitAudit(c, h.audit, "INFO", "Pet added")
	c.JSON(http.StatusCreated, gin.H{
		"pet":     pet,
		"message": fmt.Sprintf("%s added successfully", pet.Name),
	})
}

// UpdatePet handles PATCH /pets/:pet_id. Absent fields keep their value.
func (h *PetHandler) UpdatePet(c *gin.Context) {
	var req struct {
		Name             *string  `json:"name"`
		Species          *string  `json:"species"`
		Breed            *string  `json:"breed"`
		Age              *int     `json:"age"`
		AgeUnit          *string  `json:"age_unit"`
		Weight           *float64 `json:"weight"`
		Photo            *string  `json:"photo"`
		HealthPlanID     *string  `json:"health_plan_id"`
		SpecialAttention *bool    `json:"special_attention"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pet, err := h.pets.UpdatePet(c.Param("pet_id"), store.UpdatePetInput{
		Name:             req.Name,
		Species:          req.Species,
		Breed:            req.Breed,
		Age:              req.Age,
		AgeUnit:          req.AgeUnit,
		Weight:           req.Weight,
		Photo:            req.Photo,
		HealthPlanID:     req.HealthPlanID,
		SpecialAttention: req.SpecialAttention,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			emitAudit(c, h.audit, "ERROR", "pet not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "pet not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update pet"})
		return
	}

	emitAudit(c, h.audit, "INFO", "Pet updated")
	c.JSON(http.StatusOK, gin.H{"pet": pet, "message": "Pet updated successfully"})
}

// DeletePet handles DELETE /pets/:pet_id. Appointments referencing the pet
// keep their name snapshot.
func (h *PetHandler) DeletePet(c *gin.Context) {
	pet, err := h.pets.DeletePet(c.Param("pet_id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			emitAudit(c, h.audit, "ERROR", "pet not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "pet not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete pet"})
		return
	}

	emitAudit(c, h.audit, "INFO", "Pet removed")
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%s removed", pet.Name)})
}

// AssignPlan handles POST /pets/:pet_id/plan. The plan id is not validated
// against the catalog; the UI offers only catalog entries.
func (h *PetHandler) AssignPlan(c *gin.Context) {
	var req struct {
		PlanID string `json:"plan_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	petID := c.Param("pet_id")
	if err := h.pets.AssignPlan(petID, req.PlanID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			emitAudit(c, h.audit, "ERROR", "pet not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "pet not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not assign plan"})
		return
	}

	message := "Plan assigned successfully"
	if plan, err := h.plans.GetHealthPlan(req.PlanID); err == nil {
		if pet, err := h.pets.GetPet(petID); err == nil {
			message = fmt.Sprintf("Plan %s added for %s!", plan.Name, pet.Name)
		}
	}

	emitAudit(c, h.audit, "INFO", "Plan assigned to pet")
	c.JSON(http.StatusOK, gin.H{"message": message})
}
