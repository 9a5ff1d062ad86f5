package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare-service/internal/models"
	"petcare-service/internal/store"
	"petcare-service/internal/telemetry"
)

// AuthHandler manages the session endpoints.
type AuthHandler struct {
	sessions store.SessionStore
	audit    *telemetry.AuditEmitter
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(sessions store.SessionStore, audit *telemetry.AuditEmitter) *AuthHandler {
	return &AuthHandler{sessions: sessions, audit: audit}
}

// Login handles POST /auth/login. Credentials are accepted as-is; there is
// no verification backend.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Type     string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userType := models.UserType(req.Type)
	if req.Type == "" {
		userType = models.UserTypeUser
	}

	user, err := h.sessions.Login(req.Email, req.Password, userType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	emitAudit(c, h.audit, "INFO", "User logged in")
	c.JSON(http.StatusOK, gin.H{"user": user, "message": "Login successful"})
}

// Register handles POST /auth/register. No duplicate-email check is performed.
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Type     string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userType := models.UserType(req.Type)
	if req.Type == "" {
		userType = models.UserTypeUser
	}

	user, err := h.sessions.Register(req.Name, req.Email, req.Password, userType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and password are required"})
		return
	}

	emitAudit(c, h.audit, "INFO", "User registered")
	c.JSON(http.StatusCreated, gin.H{"user": user, "message": "Registration successful"})
}

// Logout handles POST /auth/logout. Domain collections survive the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout()
	emitAudit(c, h.audit, "INFO", "User logged out")
	c.JSON(http.StatusOK, gin.H{"message": "You have been logged out"})
}
