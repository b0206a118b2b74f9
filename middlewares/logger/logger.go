package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joy095/rental/logger"
)

// GinLogger logs each request with method, path, status and latency through
// the shared logrus loggers.
func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		entry := logger.InfoLogger.WithFields(map[string]interface{}{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  status,
			"latency": latency.String(),
			"client":  c.ClientIP(),
		})

		switch {
		case status >= 500:
			logger.ErrorLogger.WithFields(entry.Data).Error("request failed")
		case status >= 400:
			logger.WarnLogger.WithFields(entry.Data).Warn("request rejected")
		default:
			entry.Info("request completed")
		}
	}
}
