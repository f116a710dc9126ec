package middleware

import (
	"time"

	"task-calendar/internal/model"
	"task-calendar/pkg/log"
)

// TokenVerifier turns a bearer token into a caller scope.
type TokenVerifier interface {
	Verify(token string) (model.Scope, error)
}

// HTTPObserver records per-request metrics.
type HTTPObserver interface {
	ObserveHTTPRequest(method, path string, status int, elapsed time.Duration)
}

// Config tunes the middleware set.
type Config struct {
	RateLimitPerMin int
	RateLimitBurst  int
}

type Middleware struct {
	l        log.Logger
	verifier TokenVerifier
	metrics  HTTPObserver
	limiter  *rateLimiter
}

// New builds the middleware set. verifier and metrics may be nil.
func New(l log.Logger, verifier TokenVerifier, metrics HTTPObserver, cfg Config) Middleware {
	return Middleware{
		l:        l,
		verifier: verifier,
		metrics:  metrics,
		limiter:  newRateLimiter(cfg.RateLimitPerMin, cfg.RateLimitBurst),
	}
}
