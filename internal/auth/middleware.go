package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const contextUserKey = "auth.userID"

// Middleware validates the Authorization header and stores the caller's
// user id on the request context.
func Middleware(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := m.Verify(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		c.Set(contextUserKey, userID)
		c.Next()
	}
}

// OptionalMiddleware records the caller's user id when a valid token is
// presented but lets anonymous requests through. Used by public reads
// that personalize when they can (e.g. job view tracking).
func OptionalMiddleware(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, err := m.Verify(c.GetHeader("Authorization")); err == nil {
			c.Set(contextUserKey, userID)
		}
		c.Next()
	}
}

// UserID returns the authenticated caller's id set by Middleware.
func UserID(c *gin.Context) uint {
	return c.GetUint(contextUserKey)
}
