package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"petcare-service/internal/models"
	"petcare-service/internal/observability"
)

// Hub maintains the active websocket connections per community group.
type Hub struct {
	rooms    map[string]map[*websocket.Conn]bool
	connInfo map[string]map[*websocket.Conn]ConnInfo
	mu       sync.RWMutex
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		rooms:    make(map[string]map[*websocket.Conn]bool),
		connInfo: make(map[string]map[*websocket.Conn]ConnInfo),
	}
}

// AddGroupClient registers a websocket connection to a group room.
func (h *Hub) AddGroupClient(groupID string, conn *websocket.Conn, info ConnInfo) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[groupID]; !ok {
		h.rooms[groupID] = make(map[*websocket.Conn]bool)
	}
	h.rooms[groupID][conn] = true
	if _, ok := h.connInfo[groupID]; !ok {
		h.connInfo[groupID] = make(map[*websocket.Conn]ConnInfo)
	}
	h.connInfo[groupID][conn] = info
}

// RemoveGroupClient removes a group websocket connection.
func (h *Hub) RemoveGroupClient(groupID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.rooms[groupID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.rooms, groupID)
		}
	}
	if infos, ok := h.connInfo[groupID]; ok {
		delete(infos, conn)
		if len(infos) == 0 {
			delete(h.connInfo, groupID)
		}
	}
}

// BroadcastGroupMessage sends a stored message to all clients in the group.
func (h *Hub) BroadcastGroupMessage(groupID string, msg models.Message) {
	h.mu.RLock()
	conns := h.rooms[groupID]
	h.mu.RUnlock()

	event := models.GroupEvent{Type: "message", Message: &msg}
	payload, _ := json.Marshal(event)
	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("websocket write error: %v", err)
			conn.Close()
			h.RemoveGroupClient(groupID, conn)
			h.publishWSError(groupID, conn, err)
		}
	}
}

func (h *Hub) publishWSError(groupID string, conn *websocket.Conn, err error) {
	info, ok := h.getConnInfo(groupID, conn)
	if !ok {
		return
	}

	payload := map[string]interface{}{
		"ws": map[string]interface{}{
			"kind":        "group",
			"resource_id": groupID,
			"event":       "ws_error",
			"conn_id":     info.ConnID,
			"duration_ms": time.Since(info.ConnectedAt).Milliseconds(),
			"reason":      err.Error(),
		},
		"identity": map[string]interface{}{
			"user_id":   info.UserID,
			"device_id": info.DeviceID,
			"ip":        info.IP,
		},
	}

	headers := observability.BuildHeaders(info.RequestID, info.TraceID)
	_ = observability.PublishEvent(context.Background(), groupRoutingKey, observability.EventEnvelope{
		EventType: "ws_events",
		EventName: "ws_error",
		Payload:   payload,
	}, headers)
	observability.IncWSEvent("group", "ws_error")
}

func (h *Hub) getConnInfo(groupID string, conn *websocket.Conn) (ConnInfo, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if infos, ok := h.connInfo[groupID]; ok {
		info, exists := infos[conn]
		return info, exists
	}
	return ConnInfo{}, false
}

const groupRoutingKey = "ws_events.groups"
