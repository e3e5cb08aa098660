package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(l *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(l.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func hit(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = ip + ":1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_UnlimitedWhenZero(t *testing.T) {
	r := newLimitedRouter(NewRateLimiter(0, 0))

	for i := 0; i < 20; i++ {
		if w := hit(r, "10.0.0.1"); w.Code != http.StatusOK {
			t.Fatalf("request %d: got status %d, want 200", i, w.Code)
		}
	}
}

func TestRateLimiter_RejectsOverBurst(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := newLimitedRouter(NewRateLimiter(1, 2, WithClock(func() time.Time { return now })))

	for i := 0; i < 2; i++ {
		if w := hit(r, "10.0.0.1"); w.Code != http.StatusOK {
			t.Fatalf("request %d: got status %d, want 200", i, w.Code)
		}
	}

	w := hit(r, "10.0.0.1")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("got status %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") != "1" {
		t.Fatalf("expected Retry-After header")
	}
	if w.Body.String() != `{"message":"Too many requests","success":false}` {
		t.Fatalf("unexpected body %s", w.Body.String())
	}

	if w := hit(r, "10.0.0.2"); w.Code != http.StatusOK {
		t.Fatalf("other clients must have their own bucket, got %d", w.Code)
	}
}

func TestRateLimiter_RefillsOverTime(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := newLimitedRouter(NewRateLimiter(1, 1, WithClock(func() time.Time { return now })))

	if w := hit(r, "10.0.0.1"); w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
	if w := hit(r, "10.0.0.1"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("got status %d, want 429", w.Code)
	}

	now = now.Add(time.Second)
	if w := hit(r, "10.0.0.1"); w.Code != http.StatusOK {
		t.Fatalf("got status %d after refill, want 200", w.Code)
	}
}

func TestRateLimiter_ExpiredLimiterIsReplaced(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewRateLimiter(0.001, 1, WithTTL(time.Minute), WithClock(func() time.Time { return now }))
	r := newLimitedRouter(l)

	if w := hit(r, "10.0.0.1"); w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
	if w := hit(r, "10.0.0.1"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("got status %d, want 429", w.Code)
	}

	now = now.Add(2 * time.Minute)
	if w := hit(r, "10.0.0.1"); w.Code != http.StatusOK {
		t.Fatalf("got status %d after ttl, want 200", w.Code)
	}
}

func TestRateLimiter_ForwardedForIgnoredWithoutTrustedProxies(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewRateLimiter(1, 1, WithClock(func() time.Time { return now }))
	r := newLimitedRouter(l)
	if err := r.SetTrustedProxies(nil); err != nil {
		t.Fatalf("SetTrustedProxies: %v", err)
	}

	allowed := 0
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i+1))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code == http.StatusOK {
			allowed++
		}
	}
	if allowed != 1 {
		t.Fatalf("expected 1 allowed request, got %d", allowed)
	}
	if n := countLimiters(l); n != 1 {
		t.Fatalf("expected a single bucket, got %d", n)
	}
}

func countLimiters(l *RateLimiter) int {
	n := 0
	l.limiters.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func TestRateLimiter_SweepsExpiredLimiters(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewRateLimiter(1, 1, WithTTL(time.Minute), WithClock(func() time.Time { return now }))
	r := newLimitedRouter(l)

	hit(r, "10.0.0.1")
	hit(r, "10.0.0.2")
	if n := countLimiters(l); n != 2 {
		t.Fatalf("expected 2 limiters, got %d", n)
	}

	now = now.Add(2 * time.Minute)
	hit(r, "10.0.0.3")
	if n := countLimiters(l); n != 1 {
		t.Fatalf("expected expired limiters to be dropped, got %d", n)
	}
	if _, ok := l.limiters.Load("10.0.0.3"); !ok {
		t.Fatalf("expected the new client's limiter to be kept")
	}
}
