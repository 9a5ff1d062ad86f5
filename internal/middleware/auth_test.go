package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"petcare-service/internal/mocks"
	"petcare-service/internal/models"
)

func setupSessionRouter(sessions *mocks.SessionStoreMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/pets", SessionRequired(sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":   c.GetString("userID"),
			"user_name": c.GetString("userName"),
		})
	})
	return r
}

func TestSessionRequiredRejectsAnonymous(t *testing.T) {
	sessions := new(mocks.SessionStoreMock)
	sessions.On("CurrentUser").Return(nil, false).Once()
	router := setupSessionRouter(sessions)

	req := httptest.NewRequest(http.MethodGet, "/pets", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "not logged in")
	sessions.AssertExpectations(t)
}

func TestSessionRequiredInjectsIdentity(t *testing.T) {
	sessions := new(mocks.SessionStoreMock)
	sessions.On("CurrentUser").Return(models.User{ID: "user1", Name: "Roberto"}, true).Once()
	router := setupSessionRouter(sessions)

	req := httptest.NewRequest(http.MethodGet, "/pets", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"user_id":"user1"`)
	require.Contains(t, rec.Body.String(), `"user_name":"Roberto"`)
	sessions.AssertExpectations(t)
}
