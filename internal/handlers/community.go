package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare-service/internal/store"
	"petcare-service/internal/telemetry"
	"petcare-service/internal/ws"
)

// CommunityHandler manages group and message endpoints.
type CommunityHandler struct {
	community store.CommunityStore
	hub       *ws.Hub
	audit     *telemetry.AuditEmitter
}

// NewCommunityHandler constructs a CommunityHandler.
func NewCommunityHandler(community store.CommunityStore, hub *ws.Hub, audit *telemetry.AuditEmitter) *CommunityHandler {
	return &CommunityHandler{community: community, hub: hub, audit: audit}
}

// CreateGroup handles POST /groups. The acting user becomes a member.
func (h *CommunityHandler) CreateGroup(c *gin.Context) {
	var req struct {
		Name        string   `json:"name" binding:"required"`
		Description string   `json:"description"`
		MemberIDs   []string `json:"member_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		emitAudit(c, h.audit, "ERROR", "invalid request payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.community.CreateGroup(c.GetString("userID"), req.Name, req.Description, req.MemberIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not create group"})
		return
	}

	emitAudit(c, h.audit, "INFO", "Group created")
	c.JSON(http.StatusCreated, gin.H{
		"group":   group,
		"message": fmt.Sprintf("Group %q created successfully", group.Name),
	})
}

// ListGroups returns all groups with their most recent message.
func (h *CommunityHandler) ListGroups(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"groups": h.community.ListGroups()})
}

// GetGroup returns a single group.
func (h *CommunityHandler) GetGroup(c *gin.Context) {
	group, err := h.community.GetGroup(c.Param("group_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": group})
}

// GetGroupMessages returns the group's message sequence in append order.
func (h *CommunityHandler) GetGroupMessages(c *gin.Context) {
	msgs, err := h.community.ListMessages(c.Param("group_id"))
	if err != nil {
		emitAudit(c, h.audit, "ERROR", "group not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// PostGroupMessage stores and broadcasts a group message.
func (h *CommunityHandler) PostGroupMessage(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		emitAudit(c, h.audit, "ERROR", "invalid request payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	groupID := c.Param("group_id")
	msg, err := h.community.SendMessage(groupID, c.GetString("userID"), c.GetString("userName"), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			emitAudit(c, h.audit, "ERROR", "group not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		case errors.Is(err, store.ErrInvalidArgument):
			c.JSON(http.StatusBadRequest, gin.H{"error": "message content is empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store message"})
		}
		return
	}

	if h.hub != nil {
		h.hub.BroadcastGroupMessage(groupID, msg)
	}
	emitAudit(c, h.audit, "INFO", "Group message sent")
	c.JSON(http.StatusCreated, msg)
}
