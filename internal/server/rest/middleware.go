package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/bookshop/internal/server/auth"
)

// usernameKey is the gin context key under which the authenticated
// principal is stored. Handlers must take the acting username from here
// and never from a client-supplied field.
const usernameKey = "auth.username"

// authRequired returns the bearer-token middleware guarding mutating
// review routes. A missing header and a header without a token are
// reported separately; every verification defect (malformed token, bad
// signature, expired lifetime) collapses into one uniform rejection so a
// forger learns nothing about which check failed.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header missing"})
			return
		}

		token := bearerToken(header)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token missing"})
			return
		}

		username, err := auth.GetUsernameFromToken(token, s.jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token invalid or expired"})
			return
		}

		c.Set(usernameKey, username)
		c.Next()
	}
}

// bearerToken extracts the credential from an Authorization header value.
// Both "Bearer <token>" and a bare token are accepted, matching what the
// demo clients send.
func bearerToken(header string) string {
	parts := strings.Fields(header)
	switch {
	case len(parts) == 2 && strings.EqualFold(parts[0], "Bearer"):
		return parts[1]
	case len(parts) == 1 && !strings.EqualFold(parts[0], "Bearer"):
		return parts[0]
	default:
		return ""
	}
}
