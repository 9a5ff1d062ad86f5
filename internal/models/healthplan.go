package models

// HealthPlan is an entry of the read-only plan catalog.
type HealthPlan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Provider    string   `json:"provider"`
	Price       float64  `json:"price"`
	Coverage    []string `json:"coverage"`
	Description string   `json:"description"`
	MaxPets     int      `json:"max_pets"`
}
