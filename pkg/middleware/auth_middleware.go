package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware authorizes requests from the gateway. The gateway
// authenticates the caller and forwards the granted scopes in the
// X-User-Scopes header as a comma separated list.
type AuthMiddleware interface {
	CheckUserPermission(requiredScope string) gin.HandlerFunc
}

type authMiddleware struct {
}

func (a *authMiddleware) CheckUserPermission(requiredScope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scopesHeader := c.Request.Header.Get("X-User-Scopes")
		if len(scopesHeader) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "X-User-Scopes header is empty",
			})
			return
		}
		scopes := strings.Split(scopesHeader, ",")
		for i := range scopes {
			scopes[i] = strings.TrimSpace(scopes[i])
		}
		if !slices.Contains(scopes, requiredScope) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Permission denied",
			})
			return
		}
		c.Next()
	}
}

func NewAuthMiddleware() AuthMiddleware {
	return &authMiddleware{}
}
