package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgErrors "items-api/pkg/errors"
	"items-api/pkg/response"
)

const (
	rateLimiterMaxClients = 1000
	rateLimiterTTL        = 5 * time.Minute
)

// rateLimiter keeps one token bucket per client, evicting idle ones.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](rateLimiterMaxClients, nil, rateLimiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

// limiter returns the bucket for key, creating it once per key.
func (rl *rateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}

func (rl *rateLimiter) allow(key string) bool {
	return rl.limiter(key).Allow()
}

// RateLimit rejects clients over budget with 429. It is a no-op when
// limiting is disabled.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		if !m.limiter.allow(c.ClientIP()) {
			m.l.Debugf(c.Request.Context(), "middleware.RateLimit: %s over budget", c.ClientIP())
			response.Error(c, pkgErrors.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
