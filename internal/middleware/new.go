package middleware

import (
	"items-api/pkg/log"
	"items-api/pkg/postgre"
)

// Config tunes the request middlewares.
type Config struct {
	// RateLimitPerMin is the per-client request budget. Zero disables limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l        log.Logger
	provider postgre.Provider
	limiter  *rateLimiter
}

func New(l log.Logger, provider postgre.Provider, cfg Config) Middleware {
	m := Middleware{
		l:        l,
		provider: provider,
	}
	if cfg.RateLimitPerMin > 0 {
		m.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return m
}
