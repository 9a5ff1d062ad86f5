package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"petcare-service/internal/mocks"
	"petcare-service/internal/models"
	"petcare-service/internal/store"
)

func setupAppointmentRouter(handler *AppointmentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", "user1")
		c.Set("userName", "Roberto")
		c.Next()
	})
	r.GET("/appointments", handler.ListAppointments)
	r.POST("/appointments", handler.CreateAppointment)
	r.PATCH("/appointments/:appointment_id", handler.UpdateAppointment)
	r.DELETE("/appointments/:appointment_id", handler.DeleteAppointment)
	return r
}

func TestListAppointmentsSuccess(t *testing.T) {
	appointments := new(mocks.AppointmentStoreMock)
	handler := NewAppointmentHandler(appointments, nil)
	router := setupAppointmentRouter(handler)

	appointments.On("ListAppointments").Return([]models.Appointment{
		{ID: "a1", PetID: "1", PetName: "Rex", Date: "2026-09-10"},
	}).Once()

	req := httptest.NewRequest(http.MethodGet, "/appointments", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Rex")
	appointments.AssertExpectations(t)
}

func TestCreateAppointmentSuccess(t *testing.T) {
	appointments := new(mocks.AppointmentStoreMock)
	handler := NewAppointmentHandler(appointments, nil)
	router := setupAppointmentRouter(handler)

	appointments.On("AddAppointment", store.AddAppointmentInput{
		PetID:      "1",
		ClinicName: "Clínica VetCare",
		Date:       "2026-09-10",
		Time:       "14:00",
		Type:       "Consulta",
	}).Return(models.Appointment{ID: "a1", PetID: "1", PetName: "Rex", Status: models.AppointmentScheduled}, nil).Once()

	body := bytes.NewBufferString(`{"pet_id":"1","clinic_name":"Clínica VetCare","date":"2026-09-10","time":"14:00","type":"Consulta"}`)
	req := httptest.NewRequest(http.MethodPost, "/appointments", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), "Appointment scheduled successfully")
	appointments.AssertExpectations(t)
}

func TestCreateAppointmentMissingFields(t *testing.T) {
	appointments := new(mocks.AppointmentStoreMock)
	handler := NewAppointmentHandler(appointments, nil)
	router := setupAppointmentRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewBufferString(`{"pet_id":"1"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	appointments.AssertNotCalled(t, "AddAppointment")
}

func TestCreateAppointmentUnknownPet(t *testing.T) {
	appointments := new(mocks.AppointmentStoreMock)
	handler := NewAppointmentHandler(appointments, nil)
	router := setupAppointmentRouter(handler)

	appointments.On("AddAppointment", store.AddAppointmentInput{
		PetID:      "missing",
		ClinicName: "Clínica VetCare",
		Date:       "2026-09-10",
		Time:       "14:00",
	}).Return(nil, store.ErrNotFound).Once()

	body := bytes.NewBufferString(`{"pet_id":"missing","clinic_name":"Clínica VetCare","date":"2026-09-10","time":"14:00"}`)
	req := httptest.NewRequest(http.MethodPost, "/appointments", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "pet not found")
	appointments.AssertExpectations(t)
}

func TestUpdateAppointmentStatus(t *testing.T) {
	appointments := new(mocks.AppointmentStoreMock)
	handler := NewAppointmentHandler(appointments, nil)
	router := setupAppointmentRouter(handler)

	status := models.AppointmentCompleted
	appointments.On("UpdateAppointment", "a1", store.UpdateAppointmentInput{Status: &status}).
		Return(models.Appointment{ID: "a1", Status: models.AppointmentCompleted}, nil).Once()

	req := httptest.NewRequest(http.MethodPatch, "/appointments/a1", bytes.NewBufferString(`{"status":"completed"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	appointments.AssertExpectations(t)
}

func TestUpdateAppointmentNotFound(t *testing.T) {
	appointments := new(mocks.AppointmentStoreMock)
	handler := NewAppointmentHandler(appointments, nil)
	router := setupAppointmentRouter(handler)

	appointments.On("UpdateAppointment", "missing", store.UpdateAppointmentInput{}).
		Return(nil, store.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodPatch, "/appointments/missing", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "appointment not found")
	appointments.AssertExpectations(t)
}

func TestDeleteAppointmentSuccess(t *testing.T) {
	appointments := new(mocks.AppointmentStoreMock)
	handler := NewAppointmentHandler(appointments, nil)
	router := setupAppointmentRouter(handler)

	appointments.On("DeleteAppointment", "a1").
		Return(models.Appointment{ID: "a1"}, nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/appointments/a1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Appointment cancelled")
	appointments.AssertExpectations(t)
}
