package middleware

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"agenda-notifier/pkg/response"
)

var errRateLimited = errors.New("rate limit exceeded")

// TriggerAuth requires "Authorization: Bearer <token>".
func (m Middleware) TriggerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || m.triggerToken == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(m.triggerToken)) != 1 {
			m.l.Warnf(ctx, "middleware.TriggerAuth: rejected request from %s", c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RateLimit enforces a per client IP request budget.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.rateLimiter == nil {
			c.Next()
			return
		}

		if err := m.rateLimiter.Allow(c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// rateLimiter keeps one token bucket per client, evicting idle ones.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		return nil
	}

	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}

	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique clients
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("%w for %s", errRateLimited, key)
	}
	return nil
}
