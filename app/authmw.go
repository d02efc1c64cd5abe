package app

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"equipment_portal/models"
	"equipment_portal/session"
)

const (
	ctxUsername = "username"
	ctxRole     = "role"
)

// BearerToken extracts the token from the Authorization header. A bare
// token without the Bearer prefix is accepted too, matching the original
// portal clients.
func BearerToken(c *gin.Context) string {
	v := c.GetHeader("Authorization")
	if v == "" {
		return ""
	}
	if strings.HasPrefix(v, "Bearer ") {
		return strings.TrimPrefix(v, "Bearer ")
	}
	return v
}

// AuthRequired resolves the bearer token to an identity and stores it in the
// request context.
func AuthRequired(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"message": "unauthorized"})
			return
		}
		sess, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"message": "invalid session"})
			return
		}
		c.Set(ctxUsername, sess.Username)
		c.Set(ctxRole, sess.Role)
		c.Next()
	}
}

// RoleRequired gates a route on one of the given roles. Must run after
// AuthRequired.
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role := Identity(c)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, H{"message": "forbidden"})
	}
}

// Identity returns the authenticated username and role set by AuthRequired.
func Identity(c *gin.Context) (string, models.Role) {
	username, _ := c.Get(ctxUsername)
	role, _ := c.Get(ctxRole)
	u, _ := username.(string)
	r, _ := role.(models.Role)
	return u, r
}
