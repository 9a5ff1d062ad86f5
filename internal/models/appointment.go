package models

// AppointmentStatus enumerates the lifecycle states of an appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a veterinary appointment.
type Appointment struct {
	ID    string `json:"id"`
	PetID string `json:"pet_id"`

	// PetName is a display snapshot taken when the appointment is written.
	// It survives deletion of the referenced pet.
	PetName string `json:"pet_name"`

	ClinicName string            `json:"clinic_name"`
	Date       string            `json:"date"` // YYYY-MM-DD
	Time       string            `json:"time"` // HH:MM
	Type       string            `json:"type"`
	Status     AppointmentStatus `json:"status"`
	Notes      string            `json:"notes,omitempty"`
}
