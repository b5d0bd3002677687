package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estatedesk/estatedesk/internal/shared/constants"
)

// RoleFromContext returns the role stored by the auth middleware.
func RoleFromContext(c *gin.Context) AdminRole {
	return AdminRole(c.GetString(constants.ContextKeyAdminRole))
}

// Require aborts with 403 unless the predicate accepts the caller's role.
func Require(allowed func(AdminRole) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !allowed(RoleFromContext(c)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"type": "forbidden", "message": "insufficient role"},
			})
			return
		}
		c.Next()
	}
}
