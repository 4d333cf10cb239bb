package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// RateLimiter hands out a token bucket per client host. Buckets idle for
// a full cleanup interval are dropped.
type RateLimiter struct {
	clock clockwork.Clock
	idle  time.Duration
	stop  chan struct{}

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewRateLimiter starts the cleanup loop; call Stop on shutdown.
func NewRateLimiter(clock clockwork.Clock, cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clock:   clock,
		idle:    cleanupInterval,
		stop:    make(chan struct{}),
		buckets: make(map[string]*bucket),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit returns middleware that allows maxPerMinute requests per client,
// refilled continuously. A nil limiter or a non-positive limit yields nil,
// which Chain skips.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	if rl == nil || maxPerMinute <= 0 {
		return nil
	}
	burst := float64(maxPerMinute)
	retryAfter := strconv.Itoa(60/maxPerMinute + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.take(clientHost(r), burst) {
				w.Header().Set("Retry-After", retryAfter)
				writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// take refills the client's bucket for the time elapsed since its last
// request and spends one token if available.
func (rl *RateLimiter) take(key string, burst float64) bool {
	now := rl.clock.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: burst, last: now}
		rl.buckets[key] = b
	}
	b.tokens = min(burst, b.tokens+now.Sub(b.last).Minutes()*burst)
	b.last = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := rl.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.Chan():
			now := rl.clock.Now()
			rl.mu.Lock()
			for key, b := range rl.buckets {
				if now.Sub(b.last) >= rl.idle {
					delete(rl.buckets, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

func clientHost(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
