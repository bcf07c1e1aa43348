package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/learntech/courseplanner/internal/app/models/dto"
	"golang.org/x/time/rate"
)

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterIdleTTL         = 10 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

// RateLimiter holds one token bucket per client IP
type RateLimiter struct {
	rps     rate.Limit
	burst   int
	clients sync.Map
}

// NewRateLimiter creates a per-IP limiter. Idle clients are evicted until ctx is done.
func NewRateLimiter(ctx context.Context, requestsPerSecond float64, burst int) *RateLimiter {
	rl := &RateLimiter{rps: rate.Limit(requestsPerSecond), burst: burst}
	go rl.cleanup(ctx)
	return rl
}

func (rl *RateLimiter) get(ip string) *clientLimiter {
	v, _ := rl.clients.LoadOrStore(ip, &clientLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst)})
	cl := v.(*clientLimiter)
	cl.mu.Lock()
	cl.lastSeen = time.Now()
	cl.mu.Unlock()
	return cl
}

func (rl *RateLimiter) cleanup(ctx context.Context) {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.evictIdle(time.Now().Add(-limiterIdleTTL))
		}
	}
}

func (rl *RateLimiter) evictIdle(cutoff time.Time) {
	rl.clients.Range(func(key, value any) bool {
		cl := value.(*clientLimiter)
		cl.mu.Lock()
		idle := cl.lastSeen.Before(cutoff)
		cl.mu.Unlock()
		if idle {
			rl.clients.Delete(key)
		}
		return true
	})
}

// Middleware rejects requests over the client's budget with 429
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cl := rl.get(c.ClientIP())

		now := time.Now()
		reservation := cl.limiter.ReserveN(now, 1)
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.burst))

		if !reservation.OK() || reservation.DelayFrom(now) > 0 {
			delay := reservation.DelayFrom(now)
			reservation.CancelAt(now)
			retryAfter := int(delay.Seconds()) + 1
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeRateLimited, "rate limit exceeded").
					WithSeverity(dto.ErrorSeverityWarning),
			))
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(cl.limiter.TokensAt(now))))
		c.Next()
	}
}
