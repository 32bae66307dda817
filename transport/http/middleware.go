package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hashgate/hashgate/core"
	"github.com/hashgate/hashgate/service"
)

const contextClaimsKey = "authClaims"

// ClaimsFromContext returns the claims attached by AuthMiddleware
func ClaimsFromContext(c *gin.Context) (core.Claims, bool) {
	value, exists := c.Get(contextClaimsKey)
	if !exists {
		return core.Claims{}, false
	}
	claims, ok := value.(core.Claims)
	return claims, ok
}

// AuthMiddleware validates the bearer token on protected routes and
// attaches the identity claims to the request context. Both the
// "Bearer <token>" form and a bare token are accepted.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "No authorization header provided"})
			return
		}

		token := strings.TrimPrefix(auth, "Bearer ")

		claims, err := authService.ValidateToken(token)
		if err != nil {
			if errors.Is(err, core.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Token expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token"})
			}
			return
		}

		c.Set(contextClaimsKey, claims)

		c.Next()
	}
}
