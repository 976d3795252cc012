package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/canopyforge/canopyforge/internal/infrastructure/monitoring/logging"
	"github.com/canopyforge/canopyforge/internal/infrastructure/monitoring/prometheus"
)

// skipPaths are high-frequency probe paths that would drown the log.
var skipPaths = map[string]bool{
	"/healthz": true,
	"/metrics": true,
}

// RequestLogging logs one line per request and records HTTP metrics.
// Server errors log at Error level, client errors at Warn. metrics may be
// nil.
func RequestLogging(logger logging.Logger, metrics *prometheus.AppMetrics) gin.HandlerFunc {
	logger = logger.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		if metrics != nil {
			metrics.HTTPActiveRequests.WithLabelValues(method).Inc()
		}
		c.Next()
		elapsed := time.Since(start)
		status := c.Writer.Status()

		if metrics != nil {
			metrics.HTTPActiveRequests.WithLabelValues(method).Dec()
			metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
		}

		if skipPaths[path] {
			return
		}

		fields := []logging.Field{
			logging.String("method", method),
			logging.String("path", path),
			logging.Int("status", status),
			logging.Duration("elapsed", elapsed),
			logging.String("request_id", GetRequestID(c)),
			logging.String("remote_addr", c.ClientIP()),
		}
		switch {
		case status >= 500:
			logger.Error("request failed", fields...)
		case status >= 400:
			logger.Warn("request rejected", fields...)
		default:
			logger.Info("request handled", fields...)
		}
	}
}
