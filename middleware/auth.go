package middleware

import (
	"net/http"
	"strings"

	"github.com/KetkiGokakkar/LuxuryWatches/auth"
	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// RequireAuth rejects requests without a valid token and stores the caller's
// user id in the context.
func RequireAuth(c *gin.Context) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	userID, err := auth.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Next()
}

// OptionalAuth sets the caller's user id when a valid token is present and
// lets anonymous requests through untouched. Cart routes use this so both
// kinds of visitors resolve an identity.
func OptionalAuth(c *gin.Context) {
	if tokenString := bearerToken(c); tokenString != "" {
		if userID, err := auth.ParseToken(tokenString); err == nil {
			c.Set("user_id", userID)
		}
	}
	c.Next()
}

// UserID returns the authenticated user's id from the context.
func UserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}
