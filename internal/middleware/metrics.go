package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pavelaverin/linksight/internal/metrics"
)

// MetricsMiddleware counts requests per route template and status.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
