package models

import "time"

// Message represents a message sent in a community group.
type Message struct {
	ID      string `json:"id"`
	GroupID string `json:"group_id"`
	UserID  string `json:"user_id"`

	// UserName is a display snapshot taken when the message is sent.
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar,omitempty"`

	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
