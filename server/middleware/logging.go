package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/restkit/logger"
)

// RequestLogger logs every request with method, path, status and duration.
// The /health endpoint is skipped.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}
		fields := logger.DurationFields("http.serve", time.Since(start))
		fields["method"] = c.Request.Method
		fields["path"] = path
		fields[logger.FieldStatus] = status
		fields["client"] = c.ClientIP()
		if len(c.Errors) > 0 {
			fields[logger.FieldError] = c.Errors.String()
		}

		reqLog := log.WithContext(c.Request.Context())
		switch {
		case status >= 500:
			reqLog.Error("Request completed", fields)
		case status >= 400:
			reqLog.Warn("Request completed", fields)
		default:
			reqLog.Debug("Request completed", fields)
		}
	}
}
