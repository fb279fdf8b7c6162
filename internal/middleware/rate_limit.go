// Package middleware provides rate limiting for HTTP endpoints.
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/packwise/boxfit-service/internal/domain/dto"
)

// RateLimitConfig holds configuration for the rate limiting middleware.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained request rate allowed per client.
	RequestsPerSecond float64
	// Burst is the maximum burst size allowed per client.
	Burst int
	// ClientTTL is how long an idle client's limiter is kept before cleanup.
	ClientTTL time.Duration
}

// DefaultRateLimitConfig returns sensible defaults for the rate limiter.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		Burst:             20,
		ClientTTL:         3 * time.Minute,
	}
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits requests per client IP using token buckets.
type RateLimiter struct {
	cfg     RateLimitConfig
	clients map[string]*client
	mu      sync.Mutex
}

// NewRateLimiter creates a rate limiter and starts its idle-client janitor.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		cfg:     cfg,
		clients: make(map[string]*client),
	}
	go rl.cleanup()
	return rl
}

// Allow reports whether the client identified by ip may proceed.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rate.Limit(rl.cfg.RequestsPerSecond), rl.cfg.Burst)}
		rl.clients[ip] = c
	}
	c.lastSeen = time.Now()
	return c.limiter.Allow()
}

// cleanup periodically drops limiters for clients not seen within ClientTTL.
func (rl *RateLimiter) cleanup() {
	ttl := rl.cfg.ClientTTL
	if ttl <= 0 {
		ttl = 3 * time.Minute
	}
	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for ip, c := range rl.clients {
			if time.Since(c.lastSeen) > ttl {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware returns a Gin handler enforcing the per-client limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			requestID := GetRequestID(c)
			c.Header("Retry-After", "1")
			errorResp := dto.NewError(dto.ErrCodeRateLimit, "Too many requests").
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResp)
			return
		}
		c.Next()
	}
}

// RateLimit is a convenience constructor returning the middleware directly.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	return NewRateLimiter(cfg).Middleware()
}
