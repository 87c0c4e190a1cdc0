package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs method, path, client, status and latency of every request,
// plus the authenticated user when there is one.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		user := "-"
		if userID, err := GetUserIDFromContext(c); err == nil {
			user = userID.String()
		}

		log.Printf(
			"[%s] %s %s user=%s %d %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			user,
			c.Writer.Status(),
			latency,
		)
	}
}
