package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/voyager-backend-go/pkg/response"
)

// RateLimiter keeps a sliding window of request times per client key.
type RateLimiter struct {
	requests map[string][]time.Time
	mu       sync.Mutex
	limit    int           // Maximum requests per window
	window   time.Duration // Time window
	now      func() time.Time
}

// NewRateLimiter creates a new rate limiter. A limit below 1 disables it.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

// Run prunes idle keys every window until stop is closed
func (rl *RateLimiter) Run(stop <-chan struct{}) {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			rl.prune()
		}
	}
}

func (rl *RateLimiter) prune() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, times := range rl.requests {
		if valid := rl.recent(times, now); len(valid) == 0 {
			delete(rl.requests, key)
		} else {
			rl.requests[key] = valid
		}
	}
}

func (rl *RateLimiter) recent(times []time.Time, now time.Time) []time.Time {
	var valid []time.Time
	for _, t := range times {
		if now.Sub(t) < rl.window {
			valid = append(valid, t)
		}
	}
	return valid
}

// Allow reports whether key may make another request and records it if so
func (rl *RateLimiter) Allow(key string) bool {
	if rl.limit < 1 {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	valid := rl.recent(rl.requests[key], now)
	if len(valid) >= rl.limit {
		rl.requests[key] = valid
		return false
	}

	rl.requests[key] = append(valid, now)
	return true
}

const rateLimitMessage = "Rate limit exceeded. Please try again later."

// Rejection writes the 429 response for a limited request
type Rejection func(c *gin.Context)

// EnvelopeRejection answers in the {code, message} envelope
func EnvelopeRejection(c *gin.Context) {
	response.TooManyRequests(c, rateLimitMessage)
}

// ErrorRejection answers with a bare {"error": ...} body
func ErrorRejection(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": rateLimitMessage})
}

// RateLimit middleware limits requests per client IP
func RateLimit(limiter *RateLimiter, reject Rejection) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			reject(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
