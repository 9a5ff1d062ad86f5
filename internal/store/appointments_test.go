package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"petcare-service/internal/models"
	"petcare-service/internal/seed"
)

func TestAddAppointmentSnapshotsPetName(t *testing.T) {
	s := New(seed.Data{
		Pets: []models.Pet{{ID: "1", Name: "Rex", Species: "Cachorro"}},
	})

	appt, err := s.AddAppointment(AddAppointmentInput{
		PetID:      "1",
		ClinicName: "Clínica VetCare",
		Date:       "2026-09-10",
		Time:       "14:00",
		Type:       "Consulta",
	})
	require.NoError(t, err)
	require.Equal(t, "Rex", appt.PetName)
	require.Equal(t, models.AppointmentScheduled, appt.Status)
	require.NotEmpty(t, appt.ID)
}

func TestAddAppointmentUnknownPet(t *testing.T) {
	s := New(seed.Default())
	before := s.ListAppointments()

	_, err := s.AddAppointment(AddAppointmentInput{
		PetID:      "missing",
		ClinicName: "Clínica VetCare",
		Date:       "2026-09-10",
		Time:       "14:00",
	})
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, before, s.ListAppointments())
}

func TestListAppointmentsSortsByDateStable(t *testing.T) {
	s := New(seed.Data{
		Pets: []models.Pet{{ID: "1", Name: "Rex", Species: "Cachorro"}},
	})

	dates := []string{"2026-03-01", "2026-01-15", "2026-03-01", "2026-02-20"}
	ids := make([]string, 0, len(dates))
	for _, d := range dates {
		appt, err := s.AddAppointment(AddAppointmentInput{PetID: "1", ClinicName: "VetCare", Date: d, Time: "10:00"})
		require.NoError(t, err)
		ids = append(ids, appt.ID)
	}

	sorted := s.ListAppointments()
	require.Len(t, sorted, 4)
	require.Equal(t, "2026-01-15", sorted[0].Date)
	require.Equal(t, "2026-02-20", sorted[1].Date)
	// Equal dates keep insertion order.
	require.Equal(t, ids[0], sorted[2].ID)
	require.Equal(t, ids[2], sorted[3].ID)
}

func TestUpdateAppointmentPartialMerge(t *testing.T) {
	s := New(seed.Default())

	before, err := s.GetAppointment("1")
	require.NoError(t, err)

	notes := "Levar carteira de vacinação"
	updated, err := s.UpdateAppointment("1", UpdateAppointmentInput{Notes: &notes})
	require.NoError(t, err)

	expected := before
	expected.Notes = notes
	require.Equal(t, expected, updated)
}

func TestUpdateAppointmentResnapshotsOnPetChange(t *testing.T) {
	s := New(seed.Default())

	petID := "2"
	updated, err := s.UpdateAppointment("1", UpdateAppointmentInput{PetID: &petID})
	require.NoError(t, err)
	require.Equal(t, "2", updated.PetID)
	require.Equal(t, "Mia", updated.PetName)
}

func TestUpdateAppointmentKeepsStaleSnapshot(t *testing.T) {
	s := New(seed.Default())

	// Renaming the pet does not rewrite existing snapshots.
	name := "Bolt"
	_, err := s.UpdatePet("1", UpdatePetInput{Name: &name})
	require.NoError(t, err)

	clinic := "Clínica Nova"
	updated, err := s.UpdateAppointment("1", UpdateAppointmentInput{ClinicName: &clinic})
	require.NoError(t, err)
	require.Equal(t, "Rex", updated.PetName)
}

func TestUpdateAppointmentUnknownPet(t *testing.T) {
	s := New(seed.Default())
	before := s.ListAppointments()

	petID := "missing"
	_, err := s.UpdateAppointment("1", UpdateAppointmentInput{PetID: &petID})
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, before, s.ListAppointments())
}

func TestUpdateAppointmentNotFoundLeavesStateUntouched(t *testing.T) {
	s := New(seed.Default())
	before := s.ListAppointments()

	status := models.AppointmentCancelled
	_, err := s.UpdateAppointment("missing", UpdateAppointmentInput{Status: &status})
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, before, s.ListAppointments())
}

func TestDeleteAppointmentRemovesOnlyTarget(t *testing.T) {
	s := New(seed.Default())
	petsBefore := s.ListPets()

	removed, err := s.DeleteAppointment("1")
	require.NoError(t, err)
	require.Equal(t, "1", removed.ID)

	remaining := s.ListAppointments()
	require.Len(t, remaining, 1)
	require.Equal(t, "2", remaining[0].ID)
	require.Equal(t, petsBefore, s.ListPets())

	_, err = s.DeleteAppointment("1")
	require.ErrorIs(t, err, ErrNotFound)
}
