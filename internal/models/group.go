package models

import "time"

// Group represents a community group.
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Members     []string  `json:"members"`
	Avatar      string    `json:"avatar,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// GroupSummary pairs a group with its most recent message for list views.
type GroupSummary struct {
	Group
	LastMessage *Message `json:"last_message,omitempty"`
}

// GroupEvent is emitted over websocket connections for groups.
type GroupEvent struct {
	Type    string   `json:"type"`
	Message *Message `json:"message,omitempty"`
}
