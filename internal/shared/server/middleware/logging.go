package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Tpupu/resume-builder/internal/shared/telemetry"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"bytes_out":   c.Writer.Size(),
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if tmpl, ok := c.Get("templateChoice"); ok {
			fields["template"] = tmpl
		}
		if draftID, ok := c.Get("draftId"); ok {
			fields["draft_id"] = draftID
		}

		telemetry.Info("request.complete", fields)
	}
}
