package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// SlowRequestThreshold marks requests flagged as slow in the log
var SlowRequestThreshold = 30 * time.Second

// Logger middleware logs HTTP requests
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		latency := time.Since(start)
		slow := ""
		if latency > SlowRequestThreshold {
			slow = " (slow)"
		}

		log.Printf("[HTTP] %s %s %s %d %v%s %s",
			c.Request.Method,
			path,
			c.ClientIP(),
			c.Writer.Status(),
			latency,
			slow,
			c.Errors.String(),
		)
	}
}
