// Package middleware holds gin middleware shared by the API controllers.
package middleware

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextTokenClaims is the key used to store token claims in the Gin context.
	ContextTokenClaims = "tokenClaims"
)

// Authorize rejects requests without a valid bearer token and stores the
// decoded claims under ContextTokenClaims.
func Authorize(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// Attach claims to the request context for further use.
		c.Set(ContextTokenClaims, claims)
		c.Next()
	}
}

// Claims returns the claims stored by Authorize.
func Claims(c *gin.Context) map[string]interface{} {
	claims, _ := c.Get(ContextTokenClaims)
	m, _ := claims.(map[string]interface{})
	return m
}
