package middleware

import (
	"net/http"
	"strings"

	"rocketshoes-cart/pkg/auth"

	"github.com/gin-gonic/gin"
)

const clientIDKey = "client_id"

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	enabled    bool
}

func NewAuthMiddleware(jwtManager *auth.JWTManager, enabled bool) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager, enabled: enabled}
}

// AuthRequired middleware validates JWT token. When auth is disabled every
// request passes through.
func (a *AuthMiddleware) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.enabled {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := a.jwtManager.ValidateToken(tokenParts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(clientIDKey, claims.ClientID)
		c.Next()
	}
}

// GetClientID helper function to extract the authenticated client from context
func GetClientID(c *gin.Context) string {
	if clientID, exists := c.Get(clientIDKey); exists {
		return clientID.(string)
	}
	return ""
}
