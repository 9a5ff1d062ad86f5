package store

import (
	"strings"

	"petcare-service/internal/models"
)

// PetStore is the pet surface handlers depend on.
type PetStore interface {
	ListPets() []models.Pet
	GetPet(id string) (models.Pet, error)
	AddPet(in AddPetInput) (models.Pet, error)
	UpdatePet(id string, in UpdatePetInput) (models.Pet, error)
	DeletePet(id string) (models.Pet, error)
	AssignPlan(petID, planID string) error
}

// AddPetInput carries the fields of a new pet. The id is assigned by the store.
type AddPetInput struct {
	Name             string
	Species          string
	Breed            string
	Age              int
	AgeUnit          string
	Weight           float64
	Photo            string
	OwnerID          string
	HealthPlanID     string
	SpecialAttention bool
}

// UpdatePetInput carries a partial update. Nil fields keep the current value.
type UpdatePetInput struct {
	Name             *string
	Species          *string
	Breed            *string
	Age              *int
	AgeUnit          *string
	Weight           *float64
	Photo            *string
	HealthPlanID     *string
	SpecialAttention *bool
}

// ListPets returns the pets in insertion order.
func (s *Store) ListPets() []models.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Pet(nil), s.pets...)
}

// GetPet returns the pet with the given id.
func (s *Store) GetPet(id string) (models.Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.findPet(id)
	if !ok {
		return models.Pet{}, ErrNotFound
	}
	return s.pets[i], nil
}

// AddPet assigns a fresh id and appends the pet to the collection.
func (s *Store) AddPet(in AddPetInput) (models.Pet, error) {
	var err error
	defer func() { record("pet", "add", err) }()

	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Species) == "" {
		err = ErrInvalidArgument
		return models.Pet{}, err
	}

	pet := models.Pet{
		ID:               s.newID(),
		Name:             strings.TrimSpace(in.Name),
		Species:          strings.TrimSpace(in.Species),
		Breed:            strings.TrimSpace(in.Breed),
		Age:              in.Age,
		AgeUnit:          in.AgeUnit,
		Weight:           in.Weight,
		Photo:            in.Photo,
		OwnerID:          in.OwnerID,
		HealthPlanID:     in.HealthPlanID,
		SpecialAttention: in.SpecialAttention,
	}

	s.mu.Lock()
	s.pets = append(s.pets, pet)
	s.mu.Unlock()
	return pet, nil
}

// UpdatePet merges the given fields into the stored record. Unset fields
// are retained.
func (s *Store) UpdatePet(id string, in UpdatePetInput) (models.Pet, error) {
	var err error
	defer func() { record("pet", "update", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findPet(id)
	if !ok {
		err = ErrNotFound
		return models.Pet{}, err
	}

	pet := s.pets[i]
	if in.Name != nil {
		pet.Name = *in.Name
	}
	if in.Species != nil {
		pet.Species = *in.Species
	}
	if in.Breed != nil {
		pet.Breed = *in.Breed
	}
	if in.Age != nil {
		pet.Age = *in.Age
	}
	if in.AgeUnit != nil {
		pet.AgeUnit = *in.AgeUnit
	}
	if in.Weight != nil {
		pet.Weight = *in.Weight
	}
	if in.Photo != nil {
		pet.Photo = *in.Photo
	}
	if in.HealthPlanID != nil {
		pet.HealthPlanID = *in.HealthPlanID
	}
	if in.SpecialAttention != nil {
		pet.SpecialAttention = *in.SpecialAttention
	}

	s.pets[i] = pet
	return pet, nil
}

// DeletePet removes the pet and returns the removed record. Appointments
// referencing the pet are kept; their pet_name snapshots stay valid.
func (s *Store) DeletePet(id string) (models.Pet, error) {
	var err error
	defer func() { record("pet", "delete", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findPet(id)
	if !ok {
		err = ErrNotFound
		return models.Pet{}, err
	}

	pet := s.pets[i]
	s.pets = append(s.pets[:i], s.pets[i+1:]...)
	return pet, nil
}

// AssignPlan sets the pet's health plan id. The plan id is taken from the
// read-only catalog by the caller and is not validated here.
func (s *Store) AssignPlan(petID, planID string) error {
	var err error
	defer func() { record("pet", "assign_plan", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findPet(petID)
	if !ok {
		err = ErrNotFound
		return err
	}

	pet := s.pets[i]
	pet.HealthPlanID = planID
	s.pets[i] = pet
	return nil
}

// findPet returns the index of the pet with the given id. Callers hold the lock.
func (s *Store) findPet(id string) (int, bool) {
	for i := range s.pets {
		if s.pets[i].ID == id {
			return i, true
		}
	}
	return 0, false
}
