package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwellpress/publisher-backend/internal/auth"
)

// RequireAdmin ensures the authenticated principal's email passes the
// admin classifier. It MUST be used after auth.AuthRequired middleware.
// The check lives here, in the request-handling layer, so a direct API
// caller cannot bypass the view-level guard.
func RequireAdmin(classifier *auth.AdminClassifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := auth.GetUserEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if !classifier.IsAdminEmail(email) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		c.Next()
	}
}
