package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	h "seminarmanager/internal/delivery/http/helpers"
	"seminarmanager/internal/metrics"
)

// limiterTTL is how long an idle client keeps its limiter.
const limiterTTL = 2 * time.Hour

// LoginRateLimiter throttles login attempts per client IP with a token bucket
// that allows perHour attempts and refills one every hour/perHour.
type LoginRateLimiter struct {
	mu          sync.Mutex
	perHour     int
	limiters    map[string]*limiterEntry
	lastCleanup time.Time
	now         func() time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLoginRateLimiter returns a limiter for perHour attempts. perHour <= 0 disables limiting.
func NewLoginRateLimiter(perHour int) *LoginRateLimiter {
	return &LoginRateLimiter{
		perHour:  perHour,
		limiters: make(map[string]*limiterEntry),
		now:      time.Now,
	}
}

// Allow reports whether the client may attempt another login now.
func (l *LoginRateLimiter) Allow(key string) bool {
	if l.perHour <= 0 {
		return true
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastCleanup) > limiterTTL {
		for k, e := range l.limiters {
			if now.Sub(e.lastSeen) > limiterTTL {
				delete(l.limiters, k)
			}
		}
		l.lastCleanup = now
	}

	entry, ok := l.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rate.Every(time.Hour/time.Duration(l.perHour)), l.perHour)}
		l.limiters[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

func (l *LoginRateLimiter) retryAfter() string {
	if l.perHour <= 0 {
		return "0"
	}
	return strconv.Itoa(int((time.Hour / time.Duration(l.perHour)).Seconds()))
}

// Wrap rejects requests over the limit with 429 and a Retry-After header.
func (l *LoginRateLimiter) Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientIP(r)) {
			metrics.LoginAttemptsTotal.WithLabelValues("rate_limited").Inc()
			w.Header().Set("Retry-After", l.retryAfter())
			h.WriteJSONError(w, http.StatusTooManyRequests, h.ErrCodeTooManyRequests, "too many login attempts, try again later")
			return
		}
		next(w, r)
	}
}

// clientIP is the host part of the connection's remote address.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
