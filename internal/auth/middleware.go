package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck/internal/dto"
)

const contextKey = "auth_context"

// Middleware validates the bearer token and attaches the typed Context for
// downstream handlers to pick up via FromGin.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing Authorization header"})
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid Authorization header format"})
			return
		}

		authCtx, err := ParseToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		c.Set(contextKey, authCtx)
		c.Next()
	}
}

// RequireAdmin rejects requests whose authenticated role is not admin. Must
// run after Middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authCtx, ok := FromGin(c)
		if !ok || !authCtx.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Admin access required"})
			return
		}
		c.Next()
	}
}

// FromGin returns the Context set by Middleware.
func FromGin(c *gin.Context) (Context, bool) {
	v, exists := c.Get(contextKey)
	if !exists {
		return Context{}, false
	}
	authCtx, ok := v.(Context)
	return authCtx, ok
}
