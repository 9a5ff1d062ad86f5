package store

import (
	"sort"

	"petcare-service/internal/models"
)

// AppointmentStore is the appointment surface handlers depend on.
type AppointmentStore interface {
	ListAppointments() []models.Appointment
	GetAppointment(id string) (models.Appointment, error)
	AddAppointment(in AddAppointmentInput) (models.Appointment, error)
	UpdateAppointment(id string, in UpdateAppointmentInput) (models.Appointment, error)
	DeleteAppointment(id string) (models.Appointment, error)
}

// AddAppointmentInput carries the fields of a new appointment. The pet name
// snapshot is taken from the referenced pet at creation time.
type AddAppointmentInput struct {
	PetID      string
	ClinicName string
	Date       string // YYYY-MM-DD
	Time       string // HH:MM
	Type       string
	Status     models.AppointmentStatus // defaults to scheduled
	Notes      string
}

// UpdateAppointmentInput carries a partial update. Nil fields keep the
// current value. Changing PetID re-snapshots the pet name.
type UpdateAppointmentInput struct {
	PetID      *string
	ClinicName *string
	Date       *string
	Time       *string
	Type       *string
	Status     *models.AppointmentStatus
	Notes      *string
}

// ListAppointments returns the appointments sorted ascending by date,
// stable for equal dates. The sort is a read-time projection; storage
// keeps insertion order.
func (s *Store) ListAppointments() []models.Appointment {
	s.mu.RLock()
	out := append([]models.Appointment(nil), s.appointments...)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// GetAppointment returns the appointment with the given id.
func (s *Store) GetAppointment(id string) (models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.findAppointment(id)
	if !ok {
		return models.Appointment{}, ErrNotFound
	}
	return s.appointments[i], nil
}

// AddAppointment assigns a fresh id, snapshots the pet name and appends the
// appointment. The referenced pet must exist at creation time.
func (s *Store) AddAppointment(in AddAppointmentInput) (models.Appointment, error) {
	var err error
	defer func() { record("appointment", "add", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	pi, ok := s.findPet(in.PetID)
	if !ok {
		err = ErrNotFound
		return models.Appointment{}, err
	}

	status := in.Status
	if status == "" {
		status = models.AppointmentScheduled
	}

	appt := models.Appointment{
		ID:         s.newID(),
		PetID:      in.PetID,
		PetName:    s.pets[pi].Name,
		ClinicName: in.ClinicName,
		Date:       in.Date,
		Time:       in.Time,
		Type:       in.Type,
		Status:     status,
		Notes:      in.Notes,
	}

	s.appointments = append(s.appointments, appt)
	return appt, nil
}

// UpdateAppointment merges the given fields into the stored record. When the
// pet selection changes, the pet name snapshot is taken again from the newly
// referenced pet.
func (s *Store) UpdateAppointment(id string, in UpdateAppointmentInput) (models.Appointment, error) {
	var err error
	defer func() { record("appointment", "update", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findAppointment(id)
	if !ok {
		err = ErrNotFound
		return models.Appointment{}, err
	}

	appt := s.appointments[i]
	if in.PetID != nil && *in.PetID != appt.PetID {
		pi, ok := s.findPet(*in.PetID)
		if !ok {
			err = ErrNotFound
			return models.Appointment{}, err
		}
		appt.PetID = *in.PetID
		appt.PetName = s.pets[pi].Name
	}
	if in.ClinicName != nil {
		appt.ClinicName = *in.ClinicName
	}
	if in.Date != nil {
		appt.Date = *in.Date
	}
	if in.Time != nil {
		appt.Time = *in.Time
	}
	if in.Type != nil {
		appt.Type = *in.Type
	}
	if in.Status != nil {
		appt.Status = *in.Status
	}
	if in.Notes != nil {
		appt.Notes = *in.Notes
	}

	s.appointments[i] = appt
	return appt, nil
}

// DeleteAppointment removes the appointment and returns the removed record.
func (s *Store) DeleteAppointment(id string) (models.Appointment, error) {
	var err error
	defer func() { record("appointment", "delete", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findAppointment(id)
	if !ok {
		err = ErrNotFound
		return models.Appointment{}, err
	}

	appt := s.appointments[i]
	s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
	return appt, nil
}

// findAppointment returns the index of the appointment with the given id.
// Callers hold the lock.
func (s *Store) findAppointment(id string) (int, bool) {
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			return i, true
		}
	}
	return 0, false
}
