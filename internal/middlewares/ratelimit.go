package middlewares

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
	"github.com/saulo-duarte/chronos-workspace/internal/auth"
	"github.com/saulo-duarte/chronos-workspace/internal/config"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per authenticated user, falling back to
// the remote address for anonymous requests.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
	now      func() time.Time
	cleaning atomic.Bool
}

func NewRateLimiter(requestsPerSecond, burst int) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		now:      time.Now,
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = rl.now()
	return v.limiter
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.RemoteAddr
		if claims, err := auth.GetUserClaimsFromContext(r.Context()); err == nil {
			key = "user:" + claims.UserID
		}

		if !rl.limiter(key).Allow() {
			config.WithContext(r.Context()).WithField("key", key).Warn("Rate limit exceeded")
			w.Header().Set("Retry-After", "1")
			config.JSON(w, http.StatusTooManyRequests, action.Result{
				Success: false,
				Error:   "too many requests",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Cleanup drops buckets idle for longer than maxIdle.
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-maxIdle)
	for key, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, key)
		}
	}
}

// StartCleanup runs Cleanup every interval until ctx is done. Calls made while
// a cleanup loop is already running are no-ops.
func (rl *RateLimiter) StartCleanup(ctx context.Context, interval time.Duration) {
	if !rl.cleaning.CompareAndSwap(false, true) {
		return
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer rl.cleaning.Store(false)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.Cleanup(10 * interval)
			}
		}
	}()
}

// CleanupRunning reports whether a StartCleanup loop is active.
func (rl *RateLimiter) CleanupRunning() bool {
	return rl.cleaning.Load()
}

func (rl *RateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}
