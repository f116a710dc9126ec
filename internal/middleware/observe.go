package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-calendar/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID propagates or assigns X-Request-ID and puts it on the request context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// Metrics records request latency and count.
func (m Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.metrics == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		m.metrics.ObserveHTTPRequest(c.Request.Method, routePath(c), c.Writer.Status(), time.Since(start))
	}
}

// Logger writes one line per request.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.l.Info(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", routePath(c),
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		)
	}
}

func routePath(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return c.Request.URL.Path
}
