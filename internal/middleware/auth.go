package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"task-calendar/internal/model"
	"task-calendar/pkg/response"
)

const scopeKey = "scope"

// OptionalAuth attaches the caller scope when a valid bearer token is present.
// Requests without a bearer token continue anonymously; a bearer token that fails
// verification is rejected with 401.
func (m Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.verifier == nil {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Next()
			return
		}

		sc, err := m.verifier.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.OptionalAuth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		SetScope(c, sc)
		c.Next()
	}
}

// SetScope stores sc on the gin context.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the caller scope, or the anonymous scope.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
