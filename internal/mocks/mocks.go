package mocks

import (
	"github.com/stretchr/testify/mock"

	"petcare-service/internal/models"
	"petcare-service/internal/store"
)

type SessionStoreMock struct {
	mock.Mock
}

func (m *SessionStoreMock) Login(email, password string, userType models.UserType) (models.User, error) {
	args := m.Called(email, password, userType)
	var user models.User
	if val := args.Get(0); val != nil {
		user = val.(models.User)
	}
	return user, args.Error(1)
}

func (m *SessionStoreMock) Register(name, email, password string, userType models.UserType) (models.User, error) {
	args := m.Called(name, email, password, userType)
	var user models.User
	if val := args.Get(0); val != nil {
		user = val.(models.User)
	}
	return user, args.Error(1)
}

func (m *SessionStoreMock) Logout() {
	m.Called()
}

func (m *SessionStoreMock) CurrentUser() (models.User, bool) {
	args := m.Called()
	var user models.User
	if val := args.Get(0); val != nil {
		user = val.(models.User)
	}
	return user, args.Bool(1)
}

type PetStoreMock struct {
	mock.Mock
}

func (m *PetStoreMock) ListPets() []models.Pet {
	args := m.Called()
	var pets []models.Pet
	if val := args.Get(0); val != nil {
		pets = val.([]models.Pet)
	}
	return pets
}

func (m *PetStoreMock) GetPet(id string) (models.Pet, error) {
	args := m.Called(id)
	var pet models.Pet
	if val := args.Get(0); val != nil {
		pet = val.(models.Pet)
	}
	return pet, args.Error(1)
}

func (m *PetStoreMock) AddPet(in store.AddPetInput) (models.Pet, error) {
	args := m.Called(in)
	var pet models.Pet
	if val := args.Get(0); val != nil {
		pet = val.(models.Pet)
	}
	return pet, args.Error(1)
}

func (m *PetStoreMock) UpdatePet(id string, in store.UpdatePetInput) (models.Pet, error) {
	args := m.Called(id, in)
	var pet models.Pet
	if val := args.Get(0); val != nil {
		pet = val.(models.Pet)
	}
	return pet, args.Error(1)
}

func (m *PetStoreMock) DeletePet(id string) (models.Pet, error) {
	args := m.Called(id)
	var pet models.Pet
	if val := args.Get(0); val != nil {
		pet = val.(models.Pet)
	}
	return pet, args.Error(1)
}

func (m *PetStoreMock) AssignPlan(petID, planID string) error {
	args := m.Called(petID, planID)
	return args.Error(0)
}

type PlanStoreMock struct {
	mock.Mock
}

func (m *PlanStoreMock) ListHealthPlans() []models.HealthPlan {
	args := m.Called()
	var plans []models.HealthPlan
	if val := args.Get(0); val != nil {
		plans = val.([]models.HealthPlan)
	}
	return plans
}

func (m *PlanStoreMock) GetHealthPlan(id string) (models.HealthPlan, error) {
	args := m.Called(id)
	var plan models.HealthPlan
	if val := args.Get(0); val != nil {
		plan = val.(models.HealthPlan)
	}
	return plan, args.Error(1)
}

type AppointmentStoreMock struct {
	mock.Mock
}

func (m *AppointmentStoreMock) ListAppointments() []models.Appointment {
	args := m.Called()
	var appts []models.Appointment
	if val := args.Get(0); val != nil {
		appts = val.([]models.Appointment)
	}
	return appts
}

func (m *AppointmentStoreMock) GetAppointment(id string) (models.Appointment, error) {
	args := m.Called(id)
	var appt models.Appointment
	if val := args.Get(0); val != nil {
		appt = val.(models.Appointment)
	}
	return appt, args.Error(1)
}

func (m *AppointmentStoreMock) AddAppointment(in store.AddAppointmentInput) (models.Appointment, error) {
	args := m.Called(in)
	var appt models.Appointment
	if val := args.Get(0); val != nil {
		appt = val.(models.Appointment)
	}
	return appt, args.Error(1)
}

func (m *AppointmentStoreMock) UpdateAppointment(id string, in store.UpdateAppointmentInput) (models.Appointment, error) {
	args := m.Called(id, in)
	var appt models.Appointment
	if val := args.Get(0); val != nil {
		appt = val.(models.Appointment)
	}
	return appt, args.Error(1)
}

func (m *AppointmentStoreMock) DeleteAppointment(id string) (models.Appointment, error) {
	args := m.Called(id)
	var appt models.Appointment
	if val := args.Get(0); val != nil {
		appt = val.(models.Appointment)
	}
	return appt, args.Error(1)
}

type CommunityStoreMock struct {
	mock.Mock
}

func (m *CommunityStoreMock) ListGroups() []models.GroupSummary {
	args := m.Called()
	var groups []models.GroupSummary
	if val := args.Get(0); val != nil {
		groups = val.([]models.GroupSummary)
	}
	return groups
}

func (m *CommunityStoreMock) GetGroup(id string) (models.Group, error) {
	args := m.Called(id)
	var group models.Group
	if val := args.Get(0); val != nil {
		group = val.(models.Group)
	}
	return group, args.Error(1)
}

func (m *CommunityStoreMock) CreateGroup(creatorID, name, description string, memberIDs []string) (models.Group, error) {
	args := m.Called(creatorID, name, description, memberIDs)
	var group models.Group
	if val := args.Get(0); val != nil {
		group = val.(models.Group)
	}
	return group, args.Error(1)
}

func (m *CommunityStoreMock) IsMember(groupID, userID string) (bool, error) {
	args := m.Called(groupID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *CommunityStoreMock) ListMessages(groupID string) ([]models.Message, error) {
	args := m.Called(groupID)
	var msgs []models.Message
	if val := args.Get(0); val != nil {
		msgs = val.([]models.Message)
	}
	return msgs, args.Error(1)
}

func (m *CommunityStoreMock) SendMessage(groupID, userID, userName, content string) (models.Message, error) {
	args := m.Called(groupID, userID, userName, content)
	var msg models.Message
	if val := args.Get(0); val != nil {
		msg = val.(models.Message)
	}
	return msg, args.Error(1)
}
