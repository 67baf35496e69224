package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reservly/booking-platform/internal/models"
)

// RequireRole is the role gate: the authenticated principal's role must
// be in the allowed set. Runs after Auth; a wrong role is forbidden,
// not unauthorized.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := PrincipalRole(c)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error_code": "insufficient_permissions",
			"message":    "Your role does not permit this action.",
		})
	}
}
