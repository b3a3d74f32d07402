package middleware

import (
	"strconv"
	"time"

	"sarmiento-f5/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency by route template so that
// path parameters such as the waitlist index do not explode cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		metrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
