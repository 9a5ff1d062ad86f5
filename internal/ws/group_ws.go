package ws

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"

	"petcare-service/internal/observability"
	"petcare-service/internal/store"
)

// GroupWebSocketHandler handles live community group connections.
type GroupWebSocketHandler struct {
	hub       *Hub
	community store.CommunityStore
	sessions  store.SessionStore
}

// NewGroupWebSocketHandler constructs a GroupWebSocketHandler.
func NewGroupWebSocketHandler(hub *Hub, community store.CommunityStore, sessions store.SessionStore) *GroupWebSocketHandler {
	return &GroupWebSocketHandler{hub: hub, community: community, sessions: sessions}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handle upgrades the connection and registers the client in the group room.
func (h *GroupWebSocketHandler) Handle(c *gin.Context) {
	groupID := c.Param("group_id")
	if groupID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group id"})
		return
	}

	ctx, span := otel.Tracer("petcare-service/ws").Start(c.Request.Context(), "ws.handshake")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	user, ok := h.sessions.CurrentUser()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	member, err := h.community.IsMember(groupID, user.ID)
	if err != nil || !member {
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized for group"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	traceID := span.SpanContext().TraceID().String()
	requestID := observability.RequestIDFromRequest(c.Request)
	info := ConnInfo{
		ConnID:      newConnID(),
		UserID:      user.ID,
		DeviceID:    observability.DeviceIDFromRequest(c.Request),
		IP:          observability.IPFromRequest(c.Request),
		RequestID:   requestID,
		TraceID:     traceID,
		ConnectedAt: time.Now(),
	}
	h.hub.AddGroupClient(groupID, conn, info)

	observability.IncWSActive("group")
	observability.IncWSEvent("group", "ws_connect")
	_ = observability.PublishEvent(ctx, groupRoutingKey, observability.EventEnvelope{
		EventType: "ws_events",
		EventName: "ws_connect",
		Payload:   connEventPayload(groupID, info, 0, ""),
	}, observability.BuildHeaders(requestID, traceID))

	// Keep the connection alive and clean up on close.
	go func() {
		var closeReason string
		defer func() {
			h.hub.RemoveGroupClient(groupID, conn)
			conn.Close()
			observability.DecWSActive("group")
			observability.IncWSEvent("group", "ws_disconnect")
			_ = observability.PublishEvent(ctx, groupRoutingKey, observability.EventEnvelope{
				EventType: "ws_events",
				EventName: "ws_disconnect",
				Payload:   connEventPayload(groupID, info, time.Since(info.ConnectedAt).Milliseconds(), closeReason),
			}, observability.BuildHeaders(requestID, traceID))
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				closeReason = err.Error()
				return
			}
		}
	}()
}

func connEventPayload(groupID string, info ConnInfo, durationMS int64, reason string) map[string]interface{} {
	return map[string]interface{}{
		"ws": map[string]interface{}{
			"kind":        "group",
			"resource_id": groupID,
			"event":       "ws_lifecycle",
			"conn_id":     info.ConnID,
			"duration_ms": durationMS,
			"reason":      reason,
		},
		"identity": map[string]interface{}{
			"user_id":   info.UserID,
			"device_id": info.DeviceID,
			"ip":        info.IP,
		},
	}
}
