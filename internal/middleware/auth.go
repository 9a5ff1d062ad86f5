package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare-service/internal/store"
)

// SessionRequired rejects requests while no user is logged in. There is one
// process-wide session; the store holds it and performs no credential checks.
func SessionRequired(sessions store.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := sessions.CurrentUser()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}

		c.Set("userID", user.ID)
		c.Set("userName", user.Name)
		c.Next()
	}
}
