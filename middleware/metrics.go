package middleware

import (
	"strconv"
	"time"

	"golang-workoutcoach/metrics"

	"github.com/gin-gonic/gin"
)

// RequestMetrics records count, in-flight and duration per route. Unmatched
// routes are grouped under one label to keep cardinality bounded.
func RequestMetrics(metricsManager *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		metricsManager.GaugeRequests.Inc()
		defer metricsManager.GaugeRequests.Dec()

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metricsManager.CounterRequests.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Inc()
		metricsManager.HistRequestDuration.
			WithLabelValues(path).
			Observe(time.Since(start).Seconds())
	}
}
