package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger is a middleware function that logs the request method, path, status code, and latency.
// The authenticated user is appended when the auth middleware has run.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		user := "-"
		if id, err := GetUserIDFromContext(c); err == nil {
			user = id.String()
		}

		log.Printf(
			"[%s] %s %s %d %s user=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.Writer.Status(),
			latency,
			user,
		)
		if len(c.Errors) > 0 {
			log.Printf("[%s] %s errors: %s", c.Request.Method, c.Request.URL.Path, c.Errors.String())
		}
	}
}
