package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/regime-co/regime-api/libs/go/logger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimitPolicy is the sustained rate and burst allowed per client
type RateLimitPolicy struct {
	RequestsPerSecond float64
	Burst             int
}

// Policies used by the storefront routes
var (
	// DefaultPolicy covers browsing and cart edits
	DefaultPolicy = RateLimitPolicy{RequestsPerSecond: 20, Burst: 40}
	// WritePolicy covers order placement, gift purchases, reviews and sign-ups
	WritePolicy = RateLimitPolicy{RequestsPerSecond: 1, Burst: 5}
)

// RateLimiter keeps one token bucket per client
type RateLimiter struct {
	limiters sync.Map
	policy   RateLimitPolicy
	maxIdle  time.Duration
	now      func() time.Time
}

type limiterEntry struct {
	limiter    *rate.Limiter
	mu         sync.Mutex
	lastAccess time.Time
}

func (e *limiterEntry) touch(now time.Time) {
	e.mu.Lock()
	e.lastAccess = now
	e.mu.Unlock()
}

func (e *limiterEntry) idleSince(now time.Time) time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return now.Sub(e.lastAccess)
}

// NewRateLimiter creates a rate limiter for policy
func NewRateLimiter(policy RateLimitPolicy) *RateLimiter {
	return &RateLimiter{
		policy:  policy,
		maxIdle: 10 * time.Minute,
		now:     time.Now,
	}
}

// StartCleanup drops idle client buckets every interval until ctx is done
func (rl *RateLimiter) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.cleanup()
			}
		}
	}()
}

func (rl *RateLimiter) cleanup() {
	now := rl.now()
	rl.limiters.Range(func(key, value any) bool {
		if entry, ok := value.(*limiterEntry); ok && entry.idleSince(now) > rl.maxIdle {
			rl.limiters.Delete(key)
		}
		return true
	})
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := rl.now()
	if val, ok := rl.limiters.Load(key); ok {
		entry := val.(*limiterEntry)
		entry.touch(now)
		return entry.limiter
	}

	entry := &limiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(rl.policy.RequestsPerSecond), rl.policy.Burst),
		lastAccess: now,
	}
	actual, _ := rl.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry).limiter
}

// getClientIdentifier prefers the admin API key, then the storefront session, then the IP
func getClientIdentifier(c *gin.Context) string {
	if apiKey := c.GetHeader("X-API-Key"); apiKey != "" {
		if len(apiKey) > 8 {
			apiKey = apiKey[:8]
		}
		return "api:" + apiKey
	}
	if sessionID := c.GetHeader(SessionIDHeader); sessionID != "" {
		return "session:" + sessionID
	}
	clientIP := c.ClientIP()
	if clientIP == "" {
		clientIP = "unknown"
	}
	return "ip:" + clientIP
}

// Middleware returns a Gin middleware handler for rate limiting
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	limit := strconv.FormatFloat(rl.policy.RequestsPerSecond, 'f', -1, 64)

	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		clientID := getClientIdentifier(c)
		limiter := rl.getLimiter(clientID)
		reset := fmt.Sprintf("%d", rl.now().Add(time.Second).Unix())

		if !limiter.Allow() {
			logger.FromContext(c.Request.Context()).Warn("Rate limit exceeded",
				zap.String("client_id", clientID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)

			c.Header("X-RateLimit-Limit", limit)
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", reset)
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests. Please try again later.",
				"retry_after": 1,
			})
			return
		}

		remaining := int(limiter.Tokens())
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", reset)

		c.Next()
	}
}
