package middleware

import (
	"net/http"
	"strings"

	"golang-workoutcoach/helpers"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const ContextUserIDKey = "uid"

// Authentication requires a valid bearer token signed with secret.
func Authentication(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := helpers.ValidateToken(strings.TrimSpace(token), secret)
		if err != nil {
			log.Debugf("auth: rejecting token: %s", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}
