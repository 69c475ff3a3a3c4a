package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/celosalong/salon-booking-api/internal/session"
)

// SessionCookie is the admin token cookie name.
const SessionCookie = "admin_token"

// AdminAuth gates admin routes on the session cookie. Missing, unknown and
// expired tokens are rejected identically.
func AdminAuth(guard *session.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || !guard.Verify(c.Request.Context(), token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Next()
	}
}
