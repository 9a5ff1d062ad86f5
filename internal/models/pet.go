package models

// Pet represents a pet registered by an owner.
type Pet struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed"`

	Age     int     `json:"age"`
	AgeUnit string  `json:"age_unit,omitempty"` // "years" or "months"
	Weight  float64 `json:"weight"`

	Photo   string `json:"photo,omitempty"`
	OwnerID string `json:"owner_id"`

	// HealthPlanID references the plan catalog; empty means no plan assigned.
	HealthPlanID string `json:"health_plan_id,omitempty"`

	SpecialAttention bool `json:"special_attention,omitempty"`
}
