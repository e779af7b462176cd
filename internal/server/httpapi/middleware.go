package httpapi

import (
	"net/http"
	"strings"

	"github.com/anshumat/paystream/internal/server/models"
	"github.com/gin-gonic/gin"
)

// userContextKey is the gin context key holding the resolved identity.
const userContextKey = "currentUser"

// authRequired resolves the bearer token to a live account. Verification
// is all-or-nothing: a missing, malformed, or expired token, or a token
// whose subject no longer exists in the store, yields 401.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "missing token"})
			return
		}

		user, err := s.users.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid credentials"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// adminRequired gates admin-only operations. It must run after authRequired.
func (s *Server) adminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c).Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "not authorized"})
			return
		}
		c.Next()
	}
}

// currentUser returns the identity stashed by authRequired.
func currentUser(c *gin.Context) *models.User {
	u, _ := c.Get(userContextKey)
	return u.(*models.User)
}
