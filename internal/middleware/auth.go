package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopcart/internal/models"
	"shopcart/internal/token"
)

const claimsKey = "authClaims"

// AuthMiddleware creates a Gin middleware for bearer-token authorization.
// On failure the protected handler never runs; on success the verified
// claims are attached to the request context.
func AuthMiddleware(tokens *token.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer <token>"})
			c.Abort()
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			if errors.Is(err, token.ErrTokenExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
				c.Abort()
				return
			}
			logger.Warn("Rejected bearer token", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		// Set verified claims in context
		c.Set(claimsKey, claims)

		c.Next()
	}
}

// ClaimsFromContext returns the claims attached by AuthMiddleware.
func ClaimsFromContext(c *gin.Context) (*models.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*models.Claims)
	return claims, ok
}
