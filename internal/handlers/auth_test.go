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
)

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", handler.Login)
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/logout", handler.Logout)
	return r
}

func TestLoginSuccess(t *testing.T) {
	sessions := new(mocks.SessionStoreMock)
	handler := NewAuthHandler(sessions, nil)
	router := setupAuthRouter(handler)

	sessions.On("Login", "roberto@example.com", "secret", models.UserTypeUser).
		Return(models.User{ID: "u1", Name: "roberto", Email: "roberto@example.com", Type: models.UserTypeUser}, nil).Once()

	body := bytes.NewBufferString(`{"email":"roberto@example.com","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Login successful")
	sessions.AssertExpectations(t)
}

func TestLoginClinicType(t *testing.T) {
	sessions := new(mocks.SessionStoreMock)
	handler := NewAuthHandler(sessions, nil)
	router := setupAuthRouter(handler)

	sessions.On("Login", "vet@example.com", "secret", models.UserTypeClinic).
		Return(models.User{ID: "u2", Type: models.UserTypeClinic}, nil).Once()

	body := bytes.NewBufferString(`{"email":"vet@example.com","password":"secret","type":"clinic"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	sessions.AssertExpectations(t)
}

func TestLoginMissingPassword(t *testing.T) {
	sessions := new(mocks.SessionStoreMock)
	handler := NewAuthHandler(sessions, nil)
	router := setupAuthRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":"roberto@example.com"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	sessions.AssertNotCalled(t, "Login")
}

func TestRegisterSuccess(t *testing.T) {
	sessions := new(mocks.SessionStoreMock)
	handler := NewAuthHandler(sessions, nil)
	router := setupAuthRouter(handler)

	sessions.On("Register", "Maria Silva", "maria@example.com", "secret", models.UserTypeUser).
		Return(models.User{ID: "u3", Name: "Maria Silva"}, nil).Once()

	body := bytes.NewBufferString(`{"name":"Maria Silva","email":"maria@example.com","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), "Registration successful")
	sessions.AssertExpectations(t)
}

func TestLogoutSuccess(t *testing.T) {
	sessions := new(mocks.SessionStoreMock)
	handler := NewAuthHandler(sessions, nil)
	router := setupAuthRouter(handler)

	sessions.On("Logout").Return().Once()

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "You have been logged out")
	sessions.AssertExpectations(t)
}
