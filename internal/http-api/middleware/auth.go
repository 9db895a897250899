package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notifyhub/internal/http-api/service"
)

// CurrentUserKey is the gin context key the authenticated user is stored
// under for downstream handlers.
const CurrentUserKey = "currentUser"

// BasicAuth verifies HTTP basic-auth credentials against the user store and
// rejects the request with 401 before any handler logic runs.
func BasicAuth(users service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		name, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="notifyhub"`)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		user, err := users.Authenticate(c.Request.Context(), name, password)
		if err != nil {
			c.Header("WWW-Authenticate", `Basic realm="notifyhub"`)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}
