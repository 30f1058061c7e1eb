package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/visaletter-backend/pkg/ctxutil"
)

// RateLimiter keeps a token-bucket limiter per caller. Authenticated callers
// are keyed by user ID, anonymous ones by remote IP.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*visitor
	stop     chan struct{}
	once     sync.Once
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows perMinute requests per caller with the given burst
// and starts a background cleanup of idle callers. Call Stop() on shutdown.
func NewRateLimiter(perMinute, burst int, cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
		limiters: make(map[string]*visitor),
		stop:     make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that answers 429 with Retry-After once the
// caller's bucket is empty.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lim := rl.limiterFor(callerKey(r))

			res := lim.Reserve()
			if delay := res.Delay(); delay > 0 {
				res.Cancel()
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded", "rate_limited")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.limiters[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func callerKey(r *http.Request) string {
	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + id
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for key, v := range rl.limiters {
				if time.Since(v.lastSeen) > 10*time.Minute {
					delete(rl.limiters, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}
