package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pedala/internal/handler"
	"pedala/internal/service"
)

// AuthMiddleware validates the bearer token and stores the authenticated
// user's email in the request context.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": service.ErrNotLoggedIn.Error()})
			return
		}

		email, err := authService.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": service.ErrNotLoggedIn.Error()})
			return
		}

		c.Set(handler.ContextUserKey, email)
		c.Next()
	}
}
