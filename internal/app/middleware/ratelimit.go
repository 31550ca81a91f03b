package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimiter is a sliding-window limiter keyed by client IP.
type RateLimiter struct {
	clients map[string]*clientLimit
	mu      sync.Mutex
	logger  *zap.Logger
	now     func() time.Time

	maxRequests int
	window      time.Duration
}

type clientLimit struct {
	requests []time.Time
	lastSeen time.Time
}

func NewRateLimiter(logger *zap.Logger, maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		clients:     make(map[string]*clientLimit),
		logger:      logger,
		now:         time.Now,
		maxRequests: maxRequests,
		window:      window,
	}
}

// Allow records a request from clientID and reports whether it fits in the
// window.
func (rl *RateLimiter) Allow(clientID string) bool {
	ok, _ := rl.Reserve(clientID)
	return ok
}

// Reserve is Allow that also reports, on rejection, how long until the
// oldest request leaves the window. Idle clients are pruned on the way.
func (rl *RateLimiter) Reserve(clientID string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	for id, cl := range rl.clients {
		if cl.lastSeen.Before(now.Add(-2 * rl.window)) {
			delete(rl.clients, id)
		}
	}

	cl, ok := rl.clients[clientID]
	if !ok {
		cl = &clientLimit{requests: make([]time.Time, 0, rl.maxRequests)}
		rl.clients[clientID] = cl
	}
	cl.lastSeen = now

	valid := cl.requests[:0]
	for _, t := range cl.requests {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	cl.requests = valid

	if len(cl.requests) >= rl.maxRequests {
		rl.logger.Warn("Rate limit exceeded",
			zap.String("client_id", clientID),
			zap.Int("requests", len(cl.requests)),
			zap.Int("max_requests", rl.maxRequests),
			zap.Duration("window", rl.window))
		return false, cl.requests[0].Add(rl.window).Sub(now)
	}

	cl.requests = append(cl.requests, now)
	return true, 0
}

// retryAfterSeconds rounds wait up to whole seconds, never below one.
func retryAfterSeconds(wait time.Duration) string {
	secs := int64(math.Ceil(wait.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.FormatInt(secs, 10)
}

// RateLimitMiddleware answers 429 once a client exceeds the limiter.
func RateLimitMiddleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ok, wait := rl.Reserve(c.ClientIP()); !ok {
			c.Header("Retry-After", retryAfterSeconds(wait))
			c.String(http.StatusTooManyRequests, "Too many attempts. Please try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
