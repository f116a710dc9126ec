package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "task-calendar/pkg/errors"
	"task-calendar/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "task-calendar"

	readyTimeout = 2 * time.Second
)

var errNotReady = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "service not ready")

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once every configured backing store answers a ping.
// @Summary Readiness Check
// @Description Pings Postgres and Redis when they are configured
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "A dependency is unreachable"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	checks := gin.H{}
	ready := true
	if srv.postgresDB != nil {
		checks["postgres"] = status(srv.postgresDB.PingContext(ctx))
		ready = ready && checks["postgres"] == "ok"
	}
	if srv.redis != nil {
		checks["redis"] = status(srv.redis.Ping(ctx).Err())
		ready = ready && checks["redis"] == "ok"
	}

	if !ready {
		srv.l.Warnf(ctx, "httpserver.readyCheck: %v", checks)
		c.JSON(errNotReady.StatusCode, response.Resp{
			ErrorCode: errNotReady.Code,
			Message:   errNotReady.Message,
			Data:      checks,
		})
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
		"checks":  checks,
	})
}

func status(err error) string {
	if err != nil {
		return err.Error()
	}
	return "ok"
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
