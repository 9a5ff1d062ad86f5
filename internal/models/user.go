package models

// UserType enumerates the account kinds supported by the platform.
type UserType string

const (
	UserTypeUser         UserType = "user"
	UserTypeClinic       UserType = "clinic"
	UserTypePlanProvider UserType = "plan_provider"
	UserTypeProfessional UserType = "professional"
)

// User represents the account attached to the active session.
type User struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Type   UserType `json:"type"`
	Avatar string   `json:"avatar,omitempty"`
}
