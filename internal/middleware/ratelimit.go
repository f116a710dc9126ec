package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgErrors "task-calendar/pkg/errors"
	"task-calendar/pkg/response"
)

const (
	limiterCacheSize = 1000
	limiterTTL       = 5 * time.Minute
)

// rateLimiter keeps one token bucket per caller and forgets idle callers.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// newRateLimiter returns nil when limiting is disabled.
func newRateLimiter(requestsPerMin, burst int) *rateLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = max(requestsPerMin/10, 1)
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles per authenticated user, else per client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if sc := GetScope(c); sc.Authenticated() {
			key = "user:" + sc.UserID
		}

		if !m.limiter.allow(key) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", key)
			response.Error(c, pkgErrors.ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
