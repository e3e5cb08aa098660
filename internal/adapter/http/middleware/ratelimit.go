package middleware

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const defaultLimiterTTL = 5 * time.Minute

// RateLimiter throttles requests per client IP. A limit of 0 disables it.
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
	limiters sync.Map // client ip -> *cachedLimiter

	sweepMu   sync.Mutex
	nextSweep time.Time
}

type Option func(*RateLimiter)

func WithTTL(ttl time.Duration) Option {
	return func(l *RateLimiter) { l.ttl = ttl }
}

func WithClock(now func() time.Time) Option {
	return func(l *RateLimiter) { l.now = now }
}

func NewRateLimiter(perSecond float64, burst int, opts ...Option) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	l := &RateLimiter{
		limit: rate.Limit(perSecond),
		burst: burst,
		ttl:   defaultLimiterTTL,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Middleware answers 429 with the design endpoints' {success, message} body.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.limit <= 0 {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !l.limiterFor(ip).AllowN(l.now(), 1) {
			log.Printf("[http][ratelimit] rejected client_ip=%s path=%s", ip, c.FullPath())
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests",
			})
			return
		}
		c.Next()
	}
}

type cachedLimiter struct {
	limiter   *rate.Limiter
	expiresAt time.Time
}

func (l *RateLimiter) limiterFor(key string) *rate.Limiter {
	now := l.now()
	if v, ok := l.limiters.Load(key); ok {
		cached := v.(*cachedLimiter)
		if now.Before(cached.expiresAt) {
			return cached.limiter
		}
	}

	l.sweep(now)
	limiter := rate.NewLimiter(l.limit, l.burst)
	l.limiters.Store(key, &cachedLimiter{limiter: limiter, expiresAt: now.Add(l.ttl)})
	return limiter
}

// sweep drops expired limiters, at most once per ttl.
func (l *RateLimiter) sweep(now time.Time) {
	l.sweepMu.Lock()
	if now.Before(l.nextSweep) {
		l.sweepMu.Unlock()
		return
	}
	l.nextSweep = now.Add(l.ttl)
	l.sweepMu.Unlock()

	l.limiters.Range(func(key, v any) bool {
		if !now.Before(v.(*cachedLimiter).expiresAt) {
			l.limiters.CompareAndDelete(key, v)
		}
		return true
	})
}
