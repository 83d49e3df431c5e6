package handler

import (
	"net/http"
	"time"

	"solgate/internal/core/ports"
	"solgate/pkg/response"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns a handler that pings every dependency. Any failing
// dependency marks the whole check degraded with a 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		deps := make(map[string]string, len(checkers))
		healthy := true
		for _, checker := range checkers {
			if err := checker.Ping(ctx); err != nil {
				deps[checker.Name()] = "down: " + err.Error()
				healthy = false
			} else {
				deps[checker.Name()] = "up"
			}
		}

		payload := gin.H{
			"status":       "ok",
			"dependencies": deps,
			"checked_at":   time.Now().UTC().Format(time.RFC3339),
		}
		if !healthy {
			payload["status"] = "degraded"
			c.JSON(http.StatusServiceUnavailable, payload)
			return
		}
		response.OK(c, payload)
	}
}
